package deposit

import (
	"context"
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-uuid"
)

// Result is the outcome of loading one deposit file. It is not modified
// once returned.
type Result struct {
	ID       string
	Name     string
	Records  []*ValidatedRecord
	Calldata *BatchCalldata
}

// Loader validates deposit files and keeps the calldata of the most recent
// one. Starting a load cancels the one in flight, whose result is dropped.
type Loader struct {
	logger hclog.Logger
	config *Config

	lock       sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	current    *Result
}

func NewLoader(logger hclog.Logger, config *Config) *Loader {
	if config == nil {
		config = DefaultConfig()
	}
	return &Loader{
		logger: logger.Named("loader"),
		config: config,
	}
}

// Load parses, validates and packs a deposit file
func (l *Loader) Load(ctx context.Context, name string, data []byte) (*Result, error) {
	ctx, gen := l.begin(ctx)

	id, err := uuid.GenerateUUID()
	if err != nil {
		return l.commit(l.logger, gen, nil, err)
	}
	logger := l.logger.With("id", id, "file", name)
	logger.Debug("loading deposit file", "size", len(data))

	res, err := l.load(ctx, logger, id, name, data)
	return l.commit(logger, gen, res, err)
}

// begin starts a new generation, cancels the load in flight and clears
// the current result
func (l *Loader) begin(ctx context.Context) (context.Context, uint64) {
	ctx, cancel := context.WithCancel(ctx)

	l.lock.Lock()
	defer l.lock.Unlock()

	if l.cancel != nil {
		l.cancel()
	}
	l.generation++
	l.cancel = cancel
	l.current = nil
	return ctx, l.generation
}

// commit stores the outcome of the load of generation gen unless a newer
// load started in the meantime
func (l *Loader) commit(logger hclog.Logger, gen uint64, res *Result, err error) (*Result, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	if l.generation != gen {
		logger.Debug("dropping stale deposit load")
		return nil, ErrStaleLoad
	}
	l.cancel()
	l.cancel = nil

	if err != nil {
		l.current = nil
		logger.Error("deposit file rejected", "err", err)
		return nil, err
	}
	l.current = res

	logger.Info("deposit file loaded", "count", res.Calldata.Count, "value", res.Calldata.TotalEther())
	return res, nil
}

func (l *Loader) load(ctx context.Context, logger hclog.Logger, id, name string, data []byte) (*Result, error) {
	raw, err := ParseRecords(data)
	if err != nil {
		return nil, err
	}
	records, err := ValidateBatch(ctx, logger, l.config, raw)
	if err != nil {
		return nil, err
	}
	res := &Result{
		ID:       id,
		Name:     name,
		Records:  records,
		Calldata: PackBatch(records, l.config.DepositUnitGwei),
	}
	return res, nil
}

// Current returns the result of the last committed load, if any
func (l *Loader) Current() (*Result, bool) {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.current, l.current != nil
}
