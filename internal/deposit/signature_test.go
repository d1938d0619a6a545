package deposit

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	blst "github.com/supranational/blst/bindings/go"
)

func newTestKey(t *testing.T) *blst.SecretKey {
	t.Helper()

	ikm := make([]byte, 32)
	_, err := rand.Read(ikm)
	require.NoError(t, err)
	return blst.KeyGen(ikm)
}

// signDeposit fills the pubkey and signature of d with the ones of the key
func signDeposit(t *testing.T, key *blst.SecretKey, d *DepositData, forkVersion [4]byte) {
	t.Helper()

	d.Pubkey = new(blst.P1Affine).From(key).Compress()

	domain, err := ComputeDomain(DomainDeposit, forkVersion, [32]byte{})
	require.NoError(t, err)
	root, err := SigningRoot(d.Message(), domain)
	require.NoError(t, err)

	d.Signature = new(blst.P2Affine).Sign(key, root[:], blsDST).Compress()
}

func TestComputeDomain_Mainnet(t *testing.T) {
	domain, err := ComputeDomain(DomainDeposit, [4]byte{}, [32]byte{})
	assert.NoError(t, err)
	assert.Equal(t, "0x03000000f5a5fd42d16a20302798ef6ed309979b43003d2320d9f0e8ea9831a9", EncodeHex(domain[:]))
}

func TestGenesisForkVersion(t *testing.T) {
	version, err := GenesisForkVersion("Holesky")
	assert.NoError(t, err)
	assert.Equal(t, [4]byte{0x01, 0x01, 0x70, 0x00}, version)

	_, err = GenesisForkVersion("unknown")
	assert.Error(t, err)
}

func TestVerifySignature(t *testing.T) {
	key := newTestKey(t)
	fork := [4]byte{0x01, 0x01, 0x70, 0x00}

	d := goldenDeposit()
	signDeposit(t, key, d, fork)
	assert.NoError(t, VerifySignature(d, fork))

	// signed for another fork
	var sigErr *SignatureError
	assert.True(t, errors.As(VerifySignature(d, [4]byte{}), &sigErr))

	// the amount is covered by the signature
	d.Amount++
	assert.True(t, errors.As(VerifySignature(d, fork), &sigErr))
}

func TestVerifySignature_InvalidPoints(t *testing.T) {
	var sigErr *SignatureError

	err := VerifySignature(goldenDeposit(), [4]byte{})
	assert.True(t, errors.As(err, &sigErr))

	d := goldenDeposit()
	d.Signature = d.Signature[:95]

	var lenErr *InvalidFieldLengthError
	assert.True(t, errors.As(VerifySignature(d, [4]byte{}), &lenErr))
}

func TestValidateBatch_Signatures(t *testing.T) {
	key := newTestKey(t)

	d := goldenDeposit()
	signDeposit(t, key, d, [4]byte{})

	root, err := ComputeRoot(d)
	require.NoError(t, err)

	record := &RawRecord{
		Pubkey:                hex.EncodeToString(d.Pubkey),
		WithdrawalCredentials: hex.EncodeToString(d.WithdrawalCredentials),
		Amount:                d.Amount,
		Signature:             hex.EncodeToString(d.Signature),
		DepositDataRoot:       stringPtr(hex.EncodeToString(root[:])),
	}

	config := DefaultConfig()
	config.VerifySignatures = true

	_, err = ValidateBatch(context.Background(), nil, config, []*RawRecord{record})
	assert.NoError(t, err)

	// the fork version of the record takes precedence over the network
	record.ForkVersion = stringPtr("01017000")
	_, err = ValidateBatch(context.Background(), nil, config, []*RawRecord{record})

	var sigErr *SignatureError
	assert.True(t, errors.As(err, &sigErr))

	// unsigned records pass when signatures are not checked
	_, err = ValidateBatch(context.Background(), nil, nil, newTestRecords(t, 1))
	assert.NoError(t, err)

	_, err = ValidateBatch(context.Background(), nil, config, newTestRecords(t, 1))
	assert.True(t, errors.As(err, &sigErr))
}
