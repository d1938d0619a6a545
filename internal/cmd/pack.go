package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/umbracle/batchdeposit/internal/server"
	"github.com/umbracle/batchdeposit/internal/server/proto"
)

// PackCommand is the command to build the batch deposit calldata of a file
type PackCommand struct {
	*Meta

	json bool
}

// Help implements the cli.Command interface
func (c *PackCommand) Help() string {
	return `Usage: batchdeposit pack [options] <path>

  Validate a deposit data file and print the arguments of the batch deposit call.

Options:

  -json    Print the output as json`
}

// Synopsis implements the cli.Command interface
func (c *PackCommand) Synopsis() string {
	return "Build the batch deposit calldata of a deposit data file"
}

// Run implements the cli.Command interface
func (c *PackCommand) Run(args []string) int {
	flags := c.DepositFlagSet("pack")
	flags.BoolVar(&c.json, "json", false, "")

	if err := flags.Parse(args); err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	args = flags.Args()
	if len(args) != 1 {
		c.UI.Error("expected one argument")
		return 1
	}

	res, err := c.Load(args[0])
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	resp, err := server.NewPackResponse(res)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	out, err := formatPack(resp, c.json)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	c.UI.Output(out)
	return 0
}

func formatPack(resp *proto.PackResponse, asJSON bool) (string, error) {
	if asJSON {
		data, err := json.MarshalIndent(resp, "", "\t")
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	base := formatKV([]string{
		fmt.Sprintf("Count|%d", resp.Count),
		fmt.Sprintf("Value (wei)|%s", resp.Value),
		fmt.Sprintf("Value (ETH)|%s", resp.ValueEther),
		fmt.Sprintf("Pubkeys|%s", resp.Pubkeys),
		fmt.Sprintf("Withdrawal credentials|%s", resp.WithdrawalCredentials),
		fmt.Sprintf("Signatures|%s", resp.Signatures),
		fmt.Sprintf("Deposit data roots|%s", strings.Join(resp.DepositDataRoots, ",")),
		fmt.Sprintf("Calldata|%s", resp.Calldata),
	})
	return base, nil
}
