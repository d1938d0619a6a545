package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/ryanuber/columnize"
	"github.com/umbracle/batchdeposit/internal/cmd/server"
	"github.com/umbracle/batchdeposit/internal/deposit"
	srv "github.com/umbracle/batchdeposit/internal/server"
	"github.com/umbracle/batchdeposit/internal/server/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Commands returns the cli commands
func Commands() map[string]cli.CommandFactory {
	ui := &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	meta := &Meta{
		UI: ui,
	}

	return map[string]cli.CommandFactory{
		"server": func() (cli.Command, error) {
			return &server.Command{
				UI: ui,
			}, nil
		},
		"verify": func() (cli.Command, error) {
			return &VerifyCommand{
				Meta: meta,
			}, nil
		},
		"pack": func() (cli.Command, error) {
			return &PackCommand{
				Meta: meta,
			}, nil
		},
		"remote": func() (cli.Command, error) {
			return &RemoteCommand{}, nil
		},
		"remote pack": func() (cli.Command, error) {
			return &RemotePackCommand{
				Meta: meta,
			}, nil
		},
		"version": func() (cli.Command, error) {
			return &VersionCommand{
				UI: ui,
			}, nil
		},
	}
}

type Meta struct {
	UI   cli.Ui
	addr string

	configPath string
	logLevel   string
	network    string
	unitGwei   uint64
	verifySigs bool
	strict     bool
	workers    int
}

// FlagSet returns the flags shared by the commands that talk to the server
func (m *Meta) FlagSet(n string) *flag.FlagSet {
	f := flag.NewFlagSet(n, flag.ContinueOnError)
	f.StringVar(&m.addr, "address", "localhost:5555", "Address of the grpc api")
	return f
}

// DepositFlagSet returns the flags of the commands that validate a deposit file locally
func (m *Meta) DepositFlagSet(n string) *flag.FlagSet {
	f := flag.NewFlagSet(n, flag.ContinueOnError)
	f.StringVar(&m.configPath, "config", "", "Path of the yaml config file")
	f.StringVar(&m.logLevel, "log-level", "", "Log level")
	f.StringVar(&m.network, "network", "", "Network used to verify the signatures")
	f.Uint64Var(&m.unitGwei, "deposit-unit", 0, "Deposit amount per validator in gwei")
	f.BoolVar(&m.verifySigs, "verify-signatures", false, "Verify the bls signature of each deposit")
	f.BoolVar(&m.strict, "strict-amount", false, "Reject deposits with an amount different from the deposit unit")
	f.IntVar(&m.workers, "workers", 0, "Number of records hashed concurrently")
	return f
}

// Config returns the deposit config with the values of the flags applied
func (m *Meta) Config() (*deposit.Config, error) {
	config, err := srv.ReadConfig(m.configPath)
	if err != nil {
		return nil, err
	}
	if m.logLevel == "" {
		m.logLevel = config.LogLevel
	}

	c := config.Deposit
	if m.network != "" {
		c.Network = m.network
	}
	if m.unitGwei != 0 {
		c.DepositUnitGwei = m.unitGwei
	}
	if m.workers != 0 {
		c.Workers = m.workers
	}
	c.VerifySignatures = c.VerifySignatures || m.verifySigs
	c.RequireCanonicalAmount = c.RequireCanonicalAmount || m.strict

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Logger returns a logger that writes to stderr
func (m *Meta) Logger() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "batchdeposit",
		Level:  hclog.LevelFromString(m.logLevel),
		Output: os.Stderr,
	})
}

// Load reads a deposit file and runs it through the validation pipeline
func (m *Meta) Load(path string) (*deposit.Result, error) {
	config, err := m.Config()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deposit file: %v", err)
	}
	loader := deposit.NewLoader(m.Logger(), config)
	return loader.Load(context.Background(), path, data)
}

// Conn returns a grpc connection
func (m *Meta) Conn() (proto.DepositServiceClient, error) {
	conn, err := grpc.Dial(m.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %v", err)
	}
	clt := proto.NewDepositServiceClient(conn)
	return clt, nil
}

func formatList(in []string) string {
	columnConf := columnize.DefaultConfig()
	columnConf.Empty = "<none>"
	return columnize.Format(in, columnConf)
}

func formatKV(in []string) string {
	columnConf := columnize.DefaultConfig()
	columnConf.Empty = "<none>"
	columnConf.Glue = " = "
	return columnize.Format(in, columnConf)
}
