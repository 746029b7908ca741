package linearblock

type config struct {
	tag      string
	check    bool
	threads  int
	progress bool
}

//Option configures a Code at construction
type Option func(*config)

//WithTag labels the code, the tag is only used for display
func WithTag(tag string) Option {
	return func(c *config) {
		c.tag = tag
	}
}

//WithConsistencyCheck makes New verify G*H.T == 0 when both matrices are given
func WithConsistencyCheck() Option {
	return func(c *config) {
		c.check = true
	}
}

//WithThreads sets the number of threads used to derive matrices and search for the minimal distance.
// Zero or less means runtime.NumCPU().
func WithThreads(threads int) Option {
	return func(c *config) {
		c.threads = threads
	}
}

//WithProgress shows a progress bar during the minimal distance search
func WithProgress() Option {
	return func(c *config) {
		c.progress = true
	}
}
