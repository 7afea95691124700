package ctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestWithValue() {
	bg := Background()
	ctx := WithValue(bg, "domain", "brad.zil")
	ts.Equal("brad.zil", ctx.Value("domain"))
}

func (ts *testsuite) TestFrom() {
	plain := context.WithValue(context.Background(), "k", "v") //nolint:staticcheck
	c := From(plain)
	ts.Equal("v", c.Value("k"))

	wrapped := WithValue(Background(), "domain", "brad.eth")
	ts.Equal(wrapped, From(wrapped))
}

func (ts *testsuite) TestWithCancel() {
	bg := Background()
	ctx, cancel := WithCancel(bg)
	defer cancel()
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		ts.Fail("context not cancelled")
	}
	ts.Equal(context.Canceled, ctx.Err())
}

func (ts *testsuite) TestTimeout() {
	bg := Background()
	ctx, cancel := WithTimeout(bg, 10*time.Millisecond)
	defer cancel()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		ts.Fail("context did not time out")
	}
	ts.Equal("context deadline exceeded", ctx.Err().Error())
}
