package cmd

import (
	"context"
	"os"
	"strings"

	"github.com/mitchellh/cli"
	httpclient "github.com/umbracle/batchdeposit/internal/http"
	"github.com/umbracle/batchdeposit/internal/server/proto"
)

// RemoteCommand groups the commands that run against a server
type RemoteCommand struct {
}

// Help implements the cli.Command interface
func (c *RemoteCommand) Help() string {
	return `Usage: batchdeposit remote <subcommand>

  Run deposit commands against a running server.`
}

// Synopsis implements the cli.Command interface
func (c *RemoteCommand) Synopsis() string {
	return "Interact with a batchdeposit server"
}

// Run implements the cli.Command interface
func (c *RemoteCommand) Run(args []string) int {
	return cli.RunResultHelp
}

// RemotePackCommand is the command to pack a deposit file on a server
type RemotePackCommand struct {
	*Meta

	json     bool
	current  bool
	httpAddr string
}

// Help implements the cli.Command interface
func (c *RemotePackCommand) Help() string {
	return `Usage: batchdeposit remote pack [options] <path>

  Send a deposit data file to the server and print the batch deposit calldata.

Options:

  -address    Address of the grpc api
  -current    Print the calldata of the last file loaded by the server
  -http       Address of the http api, used instead of the grpc api
  -json       Print the output as json`
}

// Synopsis implements the cli.Command interface
func (c *RemotePackCommand) Synopsis() string {
	return "Build the batch deposit calldata on a server"
}

// Run implements the cli.Command interface
func (c *RemotePackCommand) Run(args []string) int {
	flags := c.FlagSet("remote pack")
	flags.BoolVar(&c.json, "json", false, "")
	flags.BoolVar(&c.current, "current", false, "")
	flags.StringVar(&c.httpAddr, "http", "", "")

	if err := flags.Parse(args); err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	args = flags.Args()
	if c.current && len(args) != 0 {
		c.UI.Error("expected no arguments with -current")
		return 1
	}
	if !c.current && len(args) != 1 {
		c.UI.Error("expected one argument")
		return 1
	}

	var data []byte
	if !c.current {
		var err error
		if data, err = os.ReadFile(args[0]); err != nil {
			c.UI.Error(err.Error())
			return 1
		}
	}

	var resp *proto.PackResponse
	var err error
	if c.httpAddr != "" {
		resp, err = c.httpPack(args, data)
	} else {
		resp, err = c.grpcPack(args, data)
	}
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

func (c *RemotePackCommand) grpcPack(args []string, data []byte) (*proto.PackResponse, error) {
	clt, err := c.Conn()
	if err != nil {
		return nil, err
	}
	if c.current {
		return clt.Current(context.Background(), &proto.CurrentRequest{})
	}
	return clt.Pack(context.Background(), &proto.PackRequest{Name: args[0], Data: data})
}

func (c *RemotePackCommand) httpPack(args []string, data []byte) (*proto.PackResponse, error) {
	addr := c.httpAddr
	if !strings.HasPrefix(addr, "http://") && !strings.HasPrefix(addr, "https://") {
		addr = "http://" + addr
	}
	clt := httpclient.NewHttpClient(addr)
	if c.current {
		return clt.Current()
	}
	return clt.Pack(args[0], data)
}
