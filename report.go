package main

import (
	"time"

	"github.com/hako/durafmt"
	"github.com/remeh/sizedwaitgroup"
)

// At most one goroutine per snapshot file.
const snapshotReadConcurrency = 2

// Report is the display-ready view of one pool metrics sample and,
// for the full page, the chain tip. Hashrates are KH/s.
type Report struct {
	Title string

	Hashrate15mKHs float64
	Hashrate1hKHs  float64
	Hashrate24hKHs float64

	SharesFound         uint64
	SharesFailed        uint64
	Connections         uint64
	IncomingConnections uint64

	HasChainState    bool
	TimestampDisplay string
	TimestampAge     string
	Height           uint64
}

type reportJSON struct {
	Title               string  `json:"title"`
	Hashrate15mKHs      float64 `json:"hashrate_15m_khs"`
	Hashrate1hKHs       float64 `json:"hashrate_1h_khs"`
	Hashrate24hKHs      float64 `json:"hashrate_24h_khs"`
	SharesFound         uint64  `json:"shares_found"`
	SharesFailed        uint64  `json:"shares_failed"`
	Connections         uint64  `json:"connections"`
	IncomingConnections uint64  `json:"incoming_connections"`
	TimestampDisplay    string  `json:"timestamp_display,omitempty"`
	TimestampAge        string  `json:"timestamp_age,omitempty"`
	Height              uint64  `json:"height,omitempty"`
}

func (r Report) toJSON() reportJSON {
	return reportJSON{
		Title:               r.Title,
		Hashrate15mKHs:      r.Hashrate15mKHs,
		Hashrate1hKHs:       r.Hashrate1hKHs,
		Hashrate24hKHs:      r.Hashrate24hKHs,
		SharesFound:         r.SharesFound,
		SharesFailed:        r.SharesFailed,
		Connections:         r.Connections,
		IncomingConnections: r.IncomingConnections,
		TimestampDisplay:    r.TimestampDisplay,
		TimestampAge:        r.TimestampAge,
		Height:              r.Height,
	}
}

// reportBuilder reads and parses the snapshots under root on every call.
// It holds no state between builds.
type reportBuilder struct {
	root      string
	title     string
	poolTitle string
	now       func() time.Time
}

func newReportBuilder(cfg Config) *reportBuilder {
	return &reportBuilder{
		root:      cfg.DataAPIDir,
		title:     cfg.PageTitle,
		poolTitle: cfg.StratumPageTitle,
		now:       time.Now,
	}
}

// Build returns the full report: pool metrics plus chain tip.
func (b *reportBuilder) Build() (Report, error) {
	return b.build(b.title, true)
}

// BuildPoolOnly returns the report without chain state; network/stats is
// never opened.
func (b *reportBuilder) BuildPoolOnly() (Report, error) {
	return b.build(b.poolTitle, false)
}

func (b *reportBuilder) build(title string, withChain bool) (Report, error) {
	var (
		metrics  PoolMetrics
		chain    ChainState
		poolErr  error
		chainErr error
	)

	swg := sizedwaitgroup.New(snapshotReadConcurrency)
	swg.Add()
	go func() {
		defer swg.Done()
		metrics, poolErr = loadPoolMetrics(b.root)
	}()
	if withChain {
		swg.Add()
		go func() {
			defer swg.Done()
			chain, chainErr = loadChainState(b.root)
		}()
	}
	swg.Wait()

	// Report the pool error first regardless of which read finished first.
	if poolErr != nil {
		return Report{}, poolErr
	}
	if chainErr != nil {
		return Report{}, chainErr
	}

	rep := Report{
		Title:               title,
		Hashrate15mKHs:      metrics.Hashrate15m / 1000.0,
		Hashrate1hKHs:       metrics.Hashrate1h / 1000.0,
		Hashrate24hKHs:      metrics.Hashrate24h / 1000.0,
		SharesFound:         metrics.SharesFound,
		SharesFailed:        metrics.SharesFailed,
		Connections:         metrics.Connections,
		IncomingConnections: metrics.IncomingConnections,
	}
	if withChain {
		now := time.Now()
		if b.now != nil {
			now = b.now()
		}
		rep.HasChainState = true
		rep.TimestampDisplay = formatChainTimestamp(chain.Timestamp)
		rep.TimestampAge = chainTipAge(chain.Timestamp, now)
		rep.Height = chain.Height
	}
	return rep, nil
}

func loadPoolMetrics(root string) (PoolMetrics, error) {
	raw, err := readSnapshot(root, stratumSnapshotPath)
	if err != nil {
		return PoolMetrics{}, err
	}
	return parseStratum(raw)
}

func loadChainState(root string) (ChainState, error) {
	raw, err := readSnapshot(root, networkSnapshotPath)
	if err != nil {
		return ChainState{}, err
	}
	return parseNetwork(raw)
}

// chainTipAge renders how long ago the tip was seen, e.g. "3 minutes 12
// seconds ago". Tips from the future (clock skew) read as "just now".
func chainTipAge(tip, now time.Time) string {
	age := now.Sub(tip)
	if age < time.Second {
		return "just now"
	}
	return durafmt.Parse(age.Truncate(time.Second)).LimitFirstN(2).String() + " ago"
}
