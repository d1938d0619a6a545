package deposit

import (
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/umbracle/ethgo"
	"github.com/umbracle/ethgo/abi"
)

// batchDepositABI is the abi of the batch deposit contract entrypoint
const batchDepositABI = `[{
	"name": "batchDeposit",
	"type": "function",
	"stateMutability": "payable",
	"inputs": [
		{"name": "pubkeys", "type": "bytes"},
		{"name": "withdrawal_credentials", "type": "bytes"},
		{"name": "signatures", "type": "bytes"},
		{"name": "deposit_data_roots", "type": "bytes32[]"}
	],
	"outputs": []
}]`

var batchDepositMethod = abi.MustNewABI(batchDepositABI).GetMethod("batchDeposit")

// BatchCalldata are the arguments of a single batch deposit call
type BatchCalldata struct {
	Pubkeys               []byte
	WithdrawalCredentials []byte
	Signatures            []byte
	DepositDataRoots      [][32]byte
	Count                 int

	// Value is the payment in wei that goes with the call
	Value *big.Int
}

// PackBatch concatenates the fields of the validated records in order. The
// value is count * unitGwei regardless of the amount declared by each record.
func PackBatch(records []*ValidatedRecord, unitGwei uint64) *BatchCalldata {
	num := len(records)
	b := &BatchCalldata{
		Pubkeys:               make([]byte, 0, num*PubkeyLength),
		WithdrawalCredentials: make([]byte, 0, num*WithdrawalCredentialsLength),
		Signatures:            make([]byte, 0, num*SignatureLength),
		DepositDataRoots:      make([][32]byte, 0, num),
		Count:                 num,
	}
	for _, r := range records {
		b.Pubkeys = append(b.Pubkeys, r.Data.Pubkey...)
		b.WithdrawalCredentials = append(b.WithdrawalCredentials, r.Data.WithdrawalCredentials...)
		b.Signatures = append(b.Signatures, r.Data.Signature...)
		b.DepositDataRoots = append(b.DepositDataRoots, r.Root)
	}
	b.Value = new(big.Int).Mul(ethgo.Gwei(unitGwei), big.NewInt(int64(num)))
	return b
}

func (b *BatchCalldata) PubkeysHex() string {
	return EncodeHex(b.Pubkeys)
}

func (b *BatchCalldata) WithdrawalCredentialsHex() string {
	return EncodeHex(b.WithdrawalCredentials)
}

func (b *BatchCalldata) SignaturesHex() string {
	return EncodeHex(b.Signatures)
}

func (b *BatchCalldata) DepositDataRootsHex() []string {
	res := make([]string, len(b.DepositDataRoots))
	for i, root := range b.DepositDataRoots {
		res[i] = EncodeHex(root[:])
	}
	return res
}

// TotalEther returns the value in ether as a decimal string
func (b *BatchCalldata) TotalEther() string {
	return decimal.NewFromBigInt(b.Value, -18).String()
}

// Encode returns the abi encoded batchDeposit call
func (b *BatchCalldata) Encode() ([]byte, error) {
	return batchDepositMethod.Encode([]interface{}{
		b.Pubkeys,
		b.WithdrawalCredentials,
		b.Signatures,
		b.DepositDataRoots,
	})
}
