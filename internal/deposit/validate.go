package deposit

import (
	"bytes"
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"
)

// ValidatedRecord is a deposit whose fields and root have been checked
type ValidatedRecord struct {
	Index    int
	Data     *DepositData
	Root     [32]byte
	Declared bool
}

// ValidateBatch decodes and checks every record. A single invalid record
// rejects the whole batch. The returned records keep the input order.
func ValidateBatch(ctx context.Context, logger hclog.Logger, config *Config, records []*RawRecord) ([]*ValidatedRecord, error) {
	if len(records) == 0 {
		return nil, ErrEmptyBatch
	}
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	var defaultFork [4]byte
	if config.VerifySignatures {
		fork, err := GenesisForkVersion(config.Network)
		if err != nil {
			return nil, err
		}
		defaultFork = fork
	}

	res := make([]*ValidatedRecord, len(records))

	g, gctx := errgroup.WithContext(ctx)
	if config.Workers > 0 {
		g.SetLimit(config.Workers)
	}
	for indx, record := range records {
		indx, record := indx, record
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			validated, err := validateRecord(logger, config, defaultFork, indx, record)
			if err != nil {
				return &RecordError{Index: indx, Err: err}
			}
			res[indx] = validated
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func validateRecord(logger hclog.Logger, config *Config, defaultFork [4]byte, indx int, record *RawRecord) (*ValidatedRecord, error) {
	pubkey, err := decodeField("pubkey", record.Pubkey, PubkeyLength)
	if err != nil {
		return nil, err
	}
	wc, err := decodeField("withdrawal_credentials", record.WithdrawalCredentials, WithdrawalCredentialsLength)
	if err != nil {
		return nil, err
	}
	sig, err := decodeField("signature", record.Signature, SignatureLength)
	if err != nil {
		return nil, err
	}

	data := &DepositData{
		Pubkey:                pubkey,
		WithdrawalCredentials: wc,
		Amount:                record.Amount,
		Signature:             sig,
	}

	if data.Amount != config.DepositUnitGwei {
		if config.RequireCanonicalAmount {
			return nil, &AmountError{Got: data.Amount, Want: config.DepositUnitGwei}
		}
		logger.Warn("non canonical deposit amount", "index", indx, "amount", data.Amount, "unit", config.DepositUnitGwei)
	}

	root, err := ComputeRoot(data)
	if err != nil {
		return nil, err
	}

	validated := &ValidatedRecord{
		Index: indx,
		Data:  data,
		Root:  root,
	}
	if record.DepositDataRoot != nil {
		if err := compareRoot("deposit_data_root", *record.DepositDataRoot, root); err != nil {
			return nil, err
		}
		validated.Declared = true
	}

	if record.DepositMessageRoot != nil {
		msgRoot, err := ComputeMessageRoot(data)
		if err != nil {
			return nil, err
		}
		if err := compareRoot("deposit_message_root", *record.DepositMessageRoot, msgRoot); err != nil {
			return nil, err
		}
	}

	if config.VerifySignatures {
		fork := defaultFork
		if record.ForkVersion != nil {
			buf, err := decodeField("fork_version", *record.ForkVersion, 4)
			if err != nil {
				return nil, err
			}
			copy(fork[:], buf)
		}
		if err := VerifySignature(data, fork); err != nil {
			return nil, err
		}
	}

	logger.Trace("deposit validated", "index", indx, "root", EncodeHex(root[:]))
	return validated, nil
}

func compareRoot(field, declared string, computed [32]byte) error {
	buf, err := decodeField(field, declared, RootLength)
	if err != nil {
		return err
	}
	if !bytes.Equal(buf, computed[:]) {
		mismatch := &RootMismatchError{Field: field, Computed: computed}
		copy(mismatch.Declared[:], buf)
		return mismatch
	}
	return nil
}

// String implements the fmt.Stringer interface
func (v *ValidatedRecord) String() string {
	return fmt.Sprintf("deposit(%d, %s)", v.Index, EncodeHex(v.Data.Pubkey))
}
