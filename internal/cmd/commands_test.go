package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umbracle/batchdeposit/internal/deposit"
	"github.com/umbracle/batchdeposit/internal/server"
	"github.com/umbracle/batchdeposit/internal/server/proto"
)

func testMeta() (*Meta, *cli.MockUi) {
	ui := cli.NewMockUi()
	return &Meta{UI: ui}, ui
}

// testDepositPath writes a deposit file with num valid records and returns its path
func testDepositPath(t *testing.T, num int) string {
	t.Helper()

	records := []*deposit.RawRecord{}
	for i := 0; i < num; i++ {
		seed := byte(i*3 + 1)
		data := &deposit.DepositData{
			Pubkey:                bytes.Repeat([]byte{seed}, deposit.PubkeyLength),
			WithdrawalCredentials: bytes.Repeat([]byte{seed + 1}, deposit.WithdrawalCredentialsLength),
			Amount:                deposit.MinGweiAmount,
			Signature:             bytes.Repeat([]byte{seed + 2}, deposit.SignatureLength),
		}
		root, err := deposit.ComputeRoot(data)
		require.NoError(t, err)
		rootHex := deposit.EncodeHex(root[:])

		records = append(records, &deposit.RawRecord{
			Pubkey:                deposit.EncodeHex(data.Pubkey),
			WithdrawalCredentials: deposit.EncodeHex(data.WithdrawalCredentials),
			Amount:                data.Amount,
			Signature:             deposit.EncodeHex(data.Signature),
			DepositDataRoot:       &rootHex,
		})
	}
	raw, err := json.Marshal(records)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "deposit_data.json")
	require.NoError(t, os.WriteFile(path, raw, 0644))
	return path
}

func TestCommand_Verify(t *testing.T) {
	meta, ui := testMeta()
	cmd := &VerifyCommand{Meta: meta}

	code := cmd.Run([]string{"-log-level", "off", testDepositPath(t, 3)})
	require.Equal(t, 0, code, ui.ErrorWriter.String())

	out := ui.OutputWriter.String()
	assert.Contains(t, out, "Validated 3 deposits (96 ETH)")
	assert.Contains(t, out, deposit.EncodeHex(bytes.Repeat([]byte{1}, deposit.PubkeyLength)))
}

func TestCommand_VerifyInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deposit_data.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"pubkey": "0x11"}]`), 0644))

	meta, ui := testMeta()
	cmd := &VerifyCommand{Meta: meta}

	assert.Equal(t, 1, cmd.Run([]string{"-log-level", "off", path}))
	assert.Contains(t, ui.ErrorWriter.String(), "withdrawal_credentials")

	// wrong number of arguments
	meta, _ = testMeta()
	cmd = &VerifyCommand{Meta: meta}
	assert.Equal(t, 1, cmd.Run([]string{}))
}

func TestCommand_Pack(t *testing.T) {
	path := testDepositPath(t, 2)

	meta, ui := testMeta()
	cmd := &PackCommand{Meta: meta}

	code := cmd.Run([]string{"-log-level", "off", "-json", path})
	require.Equal(t, 0, code, ui.ErrorWriter.String())

	var resp proto.PackResponse
	require.NoError(t, json.Unmarshal(ui.OutputWriter.Bytes(), &resp))
	assert.Equal(t, uint64(2), resp.Count)
	assert.Equal(t, "64000000000000000000", resp.Value)
	assert.Len(t, resp.DepositDataRoots, 2)
	assert.True(t, strings.HasPrefix(resp.Calldata, "0x"))

	// the plain output carries the same calldata
	meta, ui = testMeta()
	cmd = &PackCommand{Meta: meta}

	require.Equal(t, 0, cmd.Run([]string{"-log-level", "off", path}))
	assert.Contains(t, ui.OutputWriter.String(), resp.Calldata)
}

func TestCommand_PackDepositUnit(t *testing.T) {
	meta, ui := testMeta()
	cmd := &PackCommand{Meta: meta}

	// records of 32 ETH do not match a deposit unit of 1 ETH
	code := cmd.Run([]string{"-log-level", "off", "-deposit-unit", "1000000000", "-strict-amount", testDepositPath(t, 1)})
	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), "amount")
}

func TestCommand_RemotePack(t *testing.T) {
	config := server.DefaultConfig()
	config.GRPCAddr = "127.0.0.1:0"
	config.HTTPAddr = "127.0.0.1:0"

	srv, err := server.NewServer(hclog.NewNullLogger(), config)
	require.NoError(t, err)
	defer srv.Stop()

	path := testDepositPath(t, 2)

	// over grpc
	meta, ui := testMeta()
	cmd := &RemotePackCommand{Meta: meta}

	code := cmd.Run([]string{"-address", srv.GRPCAddr(), "-json", path})
	require.Equal(t, 0, code, ui.ErrorWriter.String())

	var resp proto.PackResponse
	require.NoError(t, json.Unmarshal(ui.OutputWriter.Bytes(), &resp))
	assert.Equal(t, uint64(2), resp.Count)

	// over http, reading the file loaded above
	meta, ui = testMeta()
	cmd = &RemotePackCommand{Meta: meta}

	code = cmd.Run([]string{"-http", srv.HTTPAddr(), "-json", "-current"})
	require.Equal(t, 0, code, ui.ErrorWriter.String())

	var current proto.PackResponse
	require.NoError(t, json.Unmarshal(ui.OutputWriter.Bytes(), &current))
	assert.Equal(t, resp, current)
}

func TestCommand_Version(t *testing.T) {
	ui := cli.NewMockUi()
	cmd := &VersionCommand{UI: ui}

	assert.Equal(t, 0, cmd.Run(nil))
	assert.Contains(t, ui.OutputWriter.String(), Version)
}
