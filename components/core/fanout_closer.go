package core

// FanoutCloser propagates close call to the underlying closers.
//
// Remarks:
//   - Closers are closed in the reverse order of registration, so a component
//     is always closed before the components it was built on.
type FanoutCloser struct {
	closers []closerNode
}

// Add registers closer with id to be notified when the close event is happened.
func (c *FanoutCloser) Add(id string, closer Closer) {
	c.closers = append(c.closers, closerNode{id: id, closer: closer})
}

// Close closes all registered closers, errors are logged and not propagated.
func (c *FanoutCloser) Close() error {
	for i := len(c.closers) - 1; i >= 0; i-- {
		node := c.closers[i]

		if err := node.closer.Close(); err != nil {
			LogErr.Printf("fanout-closer: failed to close: id=%s err=%v\n", node.id, err)
		} else {
			LogInf.Printf("fanout-closer: closed: id=%s\n", node.id)
		}
	}

	c.closers = nil

	return nil
}

type closerNode struct {
	id     string
	closer Closer
}
