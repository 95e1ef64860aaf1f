package dashboard

import (
	"sync"

	"go.uber.org/zap"

	"github.com/sells-group/risk-dashboard/internal/model"
	"github.com/sells-group/risk-dashboard/internal/normalize"
	"github.com/sells-group/risk-dashboard/internal/tabular"
)

// Reasons an upload was not committed.
const (
	ReasonEmpty      = "no rows survived normalization"
	ReasonSuperseded = "superseded by a newer upload"
	ReasonUnknown    = "unknown upload kind"
)

// Ticket orders uploads of one kind. Tickets are issued when an upload starts,
// before its body is read.
type Ticket struct {
	Kind model.Kind
	Seq  uint64
}

// CommitResult reports what an upload did to the state.
type CommitResult struct {
	Kind      model.Kind `json:"kind"`
	Rows      int        `json:"rows"`
	Committed bool       `json:"committed"`
	Reason    string     `json:"reason,omitempty"`
}

// State is the single owner of the dataset and the active filter.
// Collections are replaced wholesale, never edited in place.
type State struct {
	mu        sync.RWMutex
	initial   model.Dataset
	data      model.Dataset
	filter    string
	issued    map[model.Kind]uint64
	committed map[model.Kind]uint64
	engine    *Engine
}

// NewState creates a State holding initial, which Reset restores.
func NewState(initial model.Dataset, engine *Engine) *State {
	return &State{
		initial:   initial.Clone(),
		data:      initial.Clone(),
		filter:    AllIndustries,
		issued:    make(map[model.Kind]uint64),
		committed: make(map[model.Kind]uint64),
		engine:    engine,
	}
}

// Dataset returns a copy of the current collections.
func (s *State) Dataset() model.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// Filter returns the active industry filter.
func (s *State) Filter() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// SetFilter changes the active filter. The empty string selects AllIndustries.
func (s *State) SetFilter(industry string) {
	if industry == "" {
		industry = AllIndustries
	}
	s.mu.Lock()
	s.filter = industry
	s.mu.Unlock()
}

// View computes the views for the active filter.
func (s *State) View() View {
	d, filter := s.snapshot()
	return s.engine.Compute(d, filter)
}

// ViewFor computes the views for industry without changing the active filter.
func (s *State) ViewFor(industry string) View {
	d, _ := s.snapshot()
	return s.engine.Compute(d, industry)
}

func (s *State) snapshot() (model.Dataset, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// Slices are replaced, never mutated, so sharing them with the engine is safe.
	return s.data, s.filter
}

// BeginUpload issues the next ticket for kind.
func (s *State) BeginUpload(kind model.Kind) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued[kind]++
	return Ticket{Kind: kind, Seq: s.issued[kind]}
}

// Commit normalizes rows and, if any survive, replaces the collection for the
// ticket's kind. A ticket older than the last committed upload of the same kind
// is dropped so a slow upload cannot overwrite a newer one.
func (s *State) Commit(t Ticket, rows []tabular.Row) CommitResult {
	res := CommitResult{Kind: t.Kind}

	var (
		companies []model.Company
		portfolio []model.PortfolioAggregate
		features  []model.FeatureImportance
	)
	switch t.Kind {
	case model.KindCompanies:
		companies = normalize.Companies(rows)
		res.Rows = len(companies)
	case model.KindPortfolio:
		portfolio = normalize.Portfolio(rows)
		res.Rows = len(portfolio)
	case model.KindFeatures:
		features = normalize.Features(rows)
		res.Rows = len(features)
	default:
		res.Reason = ReasonUnknown
		return res
	}

	log := zap.L().With(
		zap.String("kind", string(t.Kind)),
		zap.Uint64("seq", t.Seq),
		zap.Int("parsed", len(rows)),
		zap.Int("kept", res.Rows),
	)

	if res.Rows == 0 {
		res.Reason = ReasonEmpty
		log.Info("dashboard: upload ignored, nothing to commit")
		return res
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if t.Seq <= s.committed[t.Kind] {
		res.Reason = ReasonSuperseded
		log.Warn("dashboard: stale upload dropped", zap.Uint64("committed_seq", s.committed[t.Kind]))
		return res
	}

	switch t.Kind {
	case model.KindCompanies:
		s.data.Companies = companies
	case model.KindPortfolio:
		s.data.Portfolio = portfolio
	case model.KindFeatures:
		s.data.Features = features
	}
	s.committed[t.Kind] = t.Seq
	res.Committed = true

	log.Info("dashboard: upload committed", zap.Int("dropped", len(rows)-res.Rows))
	return res
}

// Apply issues a ticket and commits rows in one step.
func (s *State) Apply(kind model.Kind, rows []tabular.Row) CommitResult {
	return s.Commit(s.BeginUpload(kind), rows)
}

// Reset restores the initial dataset and the AllIndustries filter. Uploads
// already in flight are treated as stale.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = s.initial.Clone()
	s.filter = AllIndustries
	for k, seq := range s.issued {
		s.committed[k] = seq
	}
}
