package deposit

import (
	"bytes"
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBatch(t *testing.T, num int) []*ValidatedRecord {
	t.Helper()

	validated, err := ValidateBatch(context.Background(), nil, nil, newTestRecords(t, num))
	require.NoError(t, err)
	return validated
}

func TestPackBatch(t *testing.T) {
	for _, num := range []int{1, 2, 7} {
		records := newTestBatch(t, num)
		b := PackBatch(records, MinGweiAmount)

		assert.Equal(t, num, b.Count)
		assert.Len(t, b.PubkeysHex(), 2+96*num)
		assert.Len(t, b.WithdrawalCredentialsHex(), 2+64*num)
		assert.Len(t, b.SignaturesHex(), 2+192*num)

		roots := b.DepositDataRootsHex()
		assert.Len(t, roots, num)
		for i, root := range roots {
			assert.Len(t, root, 66)
			assert.Equal(t, EncodeHex(records[i].Root[:]), root)
		}
	}
}

func TestPackBatch_Order(t *testing.T) {
	records := newTestBatch(t, 3)
	b := PackBatch(records, MinGweiAmount)

	for i, r := range records {
		assert.Equal(t, r.Data.Pubkey, b.Pubkeys[i*PubkeyLength:(i+1)*PubkeyLength])
		assert.Equal(t, r.Data.WithdrawalCredentials, b.WithdrawalCredentials[i*32:(i+1)*32])
		assert.Equal(t, r.Data.Signature, b.Signatures[i*SignatureLength:(i+1)*SignatureLength])
		assert.Equal(t, r.Root, b.DepositDataRoots[i])
	}
}

func TestPackBatch_Value(t *testing.T) {
	records := newTestBatch(t, 2)

	// the value does not depend on the declared amounts
	records[1].Data.Amount = 1

	b := PackBatch(records, MinGweiAmount)

	expected, ok := new(big.Int).SetString("64000000000000000000", 10)
	require.True(t, ok)
	assert.Equal(t, 0, expected.Cmp(b.Value))
	assert.Equal(t, "64", b.TotalEther())

	b = PackBatch(records[:1], 1500000000)
	assert.Equal(t, "1.5", b.TotalEther())
}

func TestBatchCalldata_Encode(t *testing.T) {
	records := newTestBatch(t, 2)
	b := PackBatch(records, MinGweiAmount)

	data, err := b.Encode()
	assert.NoError(t, err)
	assert.Equal(t, batchDepositMethod.ID(), data[:4])

	// head (4 words) + pubkeys (1 + 3 words) + credentials (1 + 2 words)
	// + signatures (1 + 6 words) + roots (1 + 2 words)
	assert.Len(t, data, 4+32*(4+4+3+7+3))

	// every field is present in the encoded call
	assert.True(t, bytes.Contains(data, b.Pubkeys))
	assert.True(t, bytes.Contains(data, b.Signatures))
	assert.True(t, bytes.Contains(data, b.DepositDataRoots[1][:]))
}
