package value

// Formatter renders a Value for display, consuming Policy.Display and
// Policy.PercentDisplay/NoneText. The value package only defines the
// interface; package textformat provides the locale-aware implementation
// built on golang.org/x/text.
type Formatter interface {
	Format(v Value) (string, error)
}
