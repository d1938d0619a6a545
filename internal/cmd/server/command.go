package server

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/umbracle/batchdeposit/internal/server"
)

// Command is the command that starts the agent
type Command struct {
	UI     cli.Ui
	client *server.Server
}

// Help implements the cli.Command interface
func (c *Command) Help() string {
	return `Usage: batchdeposit server [options]

  Start the grpc and http apis that validate and pack deposit files.

Options:

  -config               Path of the yaml config file
  -log-level            Log level
  -grpc-addr            Address of the grpc api
  -http-addr            Address of the http api
  -network              Network used to verify the signatures
  -verify-signatures    Verify the bls signature of each deposit`
}

// Synopsis implements the cli.Command interface
func (c *Command) Synopsis() string {
	return "Start the batchdeposit server"
}

// Run implements the cli.Command interface
func (c *Command) Run(args []string) int {
	config, err := c.readConfig(args)
	if err != nil {
		c.UI.Output(fmt.Sprintf("failed to read config: %v", err))
		return 1
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  config.Name,
		Level: hclog.LevelFromString(config.LogLevel),
	})
	client, err := server.NewServer(logger, config)
	if err != nil {
		c.UI.Output(fmt.Sprintf("failed to start server: %v", err))
		return 1
	}
	c.client = client
	return c.handleSignals()
}

func (c *Command) handleSignals() int {
	signalCh := make(chan os.Signal, 4)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	sig := <-signalCh

	c.UI.Output(fmt.Sprintf("Caught signal: %v", sig))
	c.UI.Output("Gracefully shutting down agent...")

	gracefulCh := make(chan struct{})
	go func() {
		c.client.Stop()
		close(gracefulCh)
	}()

	select {
	case <-signalCh:
		return 1
	case <-gracefulCh:
		return 0
	}
}

func (c *Command) readConfig(args []string) (*server.Config, error) {
	var configPath, logLevel, grpcAddr, httpAddr, network string
	var verifySigs bool

	flags := flag.NewFlagSet("server", flag.ContinueOnError)
	flags.Usage = func() { c.UI.Error(c.Help()) }

	flags.StringVar(&configPath, "config", "", "")
	flags.StringVar(&logLevel, "log-level", "", "")
	flags.StringVar(&grpcAddr, "grpc-addr", "", "")
	flags.StringVar(&httpAddr, "http-addr", "", "")
	flags.StringVar(&network, "network", "", "")
	flags.BoolVar(&verifySigs, "verify-signatures", false, "")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	config, err := server.ReadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		config.LogLevel = logLevel
	}
	if grpcAddr != "" {
		config.GRPCAddr = grpcAddr
	}
	if httpAddr != "" {
		config.HTTPAddr = httpAddr
	}
	if network != "" {
		config.Deposit.Network = network
	}
	if verifySigs {
		config.Deposit.VerifySignatures = true
	}
	if err := config.Deposit.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
