package conformance

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

// ErrUnknownTest is returned by Run for a test name that is not in Tests.
var ErrUnknownTest = errors.New("conformance: unknown test")

// A Test is a named conformance test.
type Test struct {
	Name string
	Run  func(c *Checker)
}

// tests lists the tests in execution order.
var tests = []Test{
	{"TestAPI", (*Checker).testAPI},
	{"TestRounding", (*Checker).testRounding},
}

// Tests returns the available tests in the order Run executes them: TestAPI,
// then TestRounding.
func (c *Checker) Tests() []Test {
	return append([]Test(nil), tests...)
}

// Run runs the named tests, or all tests if no name is given, in the order of
// Tests. Names are validated before anything runs; an unknown name yields an
// error wrapping ErrUnknownTest. It returns the number of mismatches reported
// by this run.
func (c *Checker) Run(names ...string) (int, error) {
	sel, err := selectTests(names)
	if err != nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	before := c.count.Load()
	for _, t := range sel {
		c.run(t)
	}
	return int(c.count.Load() - before), nil
}

func selectTests(names []string) ([]Test, error) {
	if len(names) == 0 {
		return tests, nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		found := false
		for _, t := range tests {
			if t.Name == n {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTest, n)
		}
		want[n] = true
	}
	var sel []Test
	for _, t := range tests {
		if want[t.Name] {
			sel = append(sel, t)
		}
	}
	return sel, nil
}

// run runs t with c.mu held.
func (c *Checker) run(t Test) {
	start := time.Now()
	before := c.count.Load()
	c.test = t.Name
	defer func() { c.test = "" }()
	c.log.WithField("test", t.Name).Info("Running")
	t.Run(c)
	c.log.WithFields(log.Fields{
		"test":       t.Name,
		"mismatches": c.count.Load() - before,
		"elapsed":    time.Since(start),
	}).Info("Done")
}

// TestAPI runs the API behavior test.
func (c *Checker) TestAPI() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.run(tests[0])
}

// TestRounding runs the rounding behavior test.
func (c *Checker) TestRounding() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.run(tests[1])
}
