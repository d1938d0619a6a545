package cmd

import (
	"fmt"

	"github.com/umbracle/batchdeposit/internal/deposit"
)

// VerifyCommand is the command to validate a deposit data file
type VerifyCommand struct {
	*Meta
}

// Help implements the cli.Command interface
func (c *VerifyCommand) Help() string {
	return `Usage: batchdeposit verify [options] <path>

  Validate every record of a deposit data file and recompute its deposit data root.

  The whole file is rejected if a single record is invalid.`
}

// Synopsis implements the cli.Command interface
func (c *VerifyCommand) Synopsis() string {
	return "Validate a deposit data file"
}

// Run implements the cli.Command interface
func (c *VerifyCommand) Run(args []string) int {
	flags := c.DepositFlagSet("verify")

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

	c.UI.Output(formatRecords(res.Records))
	c.UI.Output("")
	c.UI.Output(fmt.Sprintf("Validated %d deposits (%s ETH)", res.Calldata.Count, res.Calldata.TotalEther()))
	return 0
}

func formatRecords(records []*deposit.ValidatedRecord) string {
	if len(records) == 0 {
		return "No deposits found"
	}

	rows := make([]string, len(records)+1)
	rows[0] = "Index|Pubkey|Amount|Root|Declared"
	for i, r := range records {
		declared := "no"
		if r.Declared {
			declared = "yes"
		}
		rows[i+1] = fmt.Sprintf("%d|%s|%d|%s|%s",
			r.Index,
			deposit.EncodeHex(r.Data.Pubkey),
			r.Data.Amount,
			deposit.EncodeHex(r.Root[:]),
			declared,
		)
	}
	return formatList(rows)
}
