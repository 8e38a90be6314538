// Package content loads question collections and serves them to the
// quiz engine and predictor through a narrow provider interface. A
// collection is one jurisdiction's question bank plus its test
// properties; the records themselves are opaque to this package beyond
// the fields needed to run a quiz.
package content

// Item is a single multiple-choice question.
type Item struct {
	ID      int
	Prompt  string
	Options [4]string
	// Correct is the 1-based index of the correct option.
	Correct int
	// Image is an optional reference to an illustration asset.
	Image string
}

// CollectionConfig carries the per-collection test parameters.
type CollectionConfig struct {
	// PageSize is the number of questions per sequential practice test.
	PageSize int
	// SimulatorCount is the number of questions in an exam simulation.
	SimulatorCount int
	// TimeLimitMinutes is the simulator wall-clock limit.
	TimeLimitMinutes int
	// AllowedMistakes is the maximum number of wrong answers that still
	// passes the real exam in this jurisdiction.
	AllowedMistakes int
}

// Provider serves collection content. Implementations must return
// ItemIDs in a stable order: it defines sequential test slicing.
type Provider interface {
	// Item returns a question by collection and id.
	Item(collection string, id int) (Item, bool)

	// ItemIDs returns every question id in the collection, ordered.
	ItemIDs(collection string) []int

	// Config returns the collection's test parameters.
	Config(collection string) CollectionConfig

	// Collections lists the available collection ids, sorted.
	Collections() []string
}

// DefaultConfig is used when a collection file omits properties.
var DefaultConfig = CollectionConfig{
	PageSize:         20,
	SimulatorCount:   30,
	TimeLimitMinutes: 30,
	AllowedMistakes:  6,
}
