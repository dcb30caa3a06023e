package dlist

// Available sort policies.
const (
	// Quick policy sorts with an unstable quicksort.
	Quick = "quick"
	// Stable policy sorts with a stable sort. Equal elements keep their relative order.
	Stable = "stable"
)

// Option is a list configuration option.
type Option interface {
	apply(*listOptions)
}

type listOptions struct {
	sort string
}

func newDefaultListOptions() listOptions {
	return listOptions{
		sort: Quick,
	}
}

// WithSort option configures the list with specified sort policy.
//
// The zero value configures the Quick policy.
func WithSort(policy string) Option {
	return funcOption(func(opts *listOptions) {
		switch policy {
		case "":
			opts.sort = Quick

		case Quick, Stable:
			opts.sort = policy

		default:
			panic("dlist: invalid sort policy '" + policy + "'")
		}
	})
}

type funcOption func(*listOptions)

func (o funcOption) apply(opts *listOptions) {
	o(opts)
}
