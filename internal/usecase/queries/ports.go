package queries

//go:generate mockgen -destination=../../../tests/mock/queries/queries.go -package=queriesmock car-rental-engine/internal/usecase/queries BookingQueries,CarQueries,ReportQueries

// Quote sources reported to the metrics recorder.
const (
	QuoteSourceQuote = "quote"
	QuoteSourceList  = "list"
)

type QuoteRecorder interface {
	PriceQuote(source string)
}

type nopRecorder struct{}

func (nopRecorder) PriceQuote(string) {}

func recorderOrNop(r QuoteRecorder) QuoteRecorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}
