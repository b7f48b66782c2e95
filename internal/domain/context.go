package domain

import "fmt"

// Context is the relationship pool a swipe or match belongs to. The two
// pools are fully independent: a swipe in one has no effect on the other.
type Context string

const (
	ContextFriends Context = "friends"
	ContextDating  Context = "dating"
)

// Contexts lists every valid context.
var Contexts = []Context{ContextFriends, ContextDating}

// ParseContext validates a raw context literal. Anything other than the two
// known pools is a contract violation, never silently defaulted.
func ParseContext(raw string) (Context, error) {
	switch Context(raw) {
	case ContextFriends:
		return ContextFriends, nil
	case ContextDating:
		return ContextDating, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidContext, raw)
	}
}

func (c Context) Valid() bool {
	return c == ContextFriends || c == ContextDating
}

func (c Context) String() string {
	return string(c)
}
