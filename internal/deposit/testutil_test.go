package deposit

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// goldenDeposit is the canonical deposit with repeated byte fields
func goldenDeposit() *DepositData {
	return &DepositData{
		Pubkey:                bytes.Repeat([]byte{0x11}, PubkeyLength),
		WithdrawalCredentials: bytes.Repeat([]byte{0x22}, WithdrawalCredentialsLength),
		Amount:                MinGweiAmount,
		Signature:             bytes.Repeat([]byte{0x33}, SignatureLength),
	}
}

// newTestRecord returns a raw record built from the seed with a correct
// declared root
func newTestRecord(t *testing.T, seed byte) *RawRecord {
	t.Helper()

	data := &DepositData{
		Pubkey:                bytes.Repeat([]byte{seed}, PubkeyLength),
		WithdrawalCredentials: bytes.Repeat([]byte{seed + 1}, WithdrawalCredentialsLength),
		Amount:                MinGweiAmount,
		Signature:             bytes.Repeat([]byte{seed + 2}, SignatureLength),
	}
	root, err := ComputeRoot(data)
	require.NoError(t, err)

	return &RawRecord{
		Pubkey:                hex.EncodeToString(data.Pubkey),
		WithdrawalCredentials: hex.EncodeToString(data.WithdrawalCredentials),
		Amount:                data.Amount,
		Signature:             hex.EncodeToString(data.Signature),
		DepositDataRoot:       stringPtr(hex.EncodeToString(root[:])),
	}
}

func stringPtr(s string) *string {
	return &s
}

func newTestRecords(t *testing.T, num int) []*RawRecord {
	t.Helper()

	records := make([]*RawRecord, num)
	for i := 0; i < num; i++ {
		records[i] = newTestRecord(t, byte(i*3+1))
	}
	return records
}

// newTestFile encodes records as a deposit data file
func newTestFile(t *testing.T, records []*RawRecord) []byte {
	t.Helper()

	data, err := json.Marshal(records)
	require.NoError(t, err)
	return data
}
