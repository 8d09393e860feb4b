package query

import (
	"context"
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// TestDef names a query endpoint under test. R is the request type and S the response type.
type TestDef[R any, S any] struct {
	QueryName string
	Query     func(goCtx context.Context, req *R) (*S, error)
}

// TestCase is one request against a query endpoint.
type TestCase[R any, S any] struct {
	Name string
	// Setup prepares state. It runs against a cache of the suite context, so
	// nothing it writes leaks into other cases.
	Setup        func()
	Req          *R
	ExpectedResp *S
	// ExpectedCode, when not OK, is the gRPC status code the query must fail with.
	ExpectedCode codes.Code
	// ExpectedErrSubstrs must all appear in the error. Empty with an OK code means success.
	ExpectedErrSubstrs []string
}

func (tc TestCase[R, S]) expectsError() bool {
	return tc.ExpectedCode != codes.OK || len(tc.ExpectedErrSubstrs) > 0
}

type TestSuiter interface {
	Context() sdk.Context
	SetContext(ctx sdk.Context)
	Require() *require.Assertions
	Assert() *assert.Assertions
}

// RunTestCase runs tc against td on a cached context and restores the suite
// context afterwards. Responses are compared as JSON since math.Int and
// math.LegacyDec values that are equal may differ internally.
func RunTestCase[R any, S any](s TestSuiter, td TestDef[R, S], tc TestCase[R, S]) {
	orig := s.Context()
	defer s.SetContext(orig)
	cacheCtx, _ := orig.CacheContext()
	s.SetContext(cacheCtx)

	if tc.Setup != nil {
		tc.Setup()
	}

	var (
		resp *S
		err  error
	)
	s.Require().NotPanics(func() {
		resp, err = td.Query(s.Context(), tc.Req)
	}, td.QueryName)

	if !tc.expectsError() {
		s.Assert().NoErrorf(err, "%s error", td.QueryName)
		s.Assert().JSONEqf(mustJSON(s, tc.ExpectedResp), mustJSON(s, resp), "%s response", td.QueryName)
		return
	}

	s.Require().Errorf(err, "%s error", td.QueryName)
	if tc.ExpectedCode != codes.OK {
		s.Assert().Equalf(tc.ExpectedCode, status.Code(err), "%s status code", td.QueryName)
	}
	for _, substr := range tc.ExpectedErrSubstrs {
		s.Assert().Containsf(err.Error(), substr, "%s error", td.QueryName)
	}
}

func mustJSON(s TestSuiter, v any) string {
	bz, err := json.Marshal(v)
	s.Require().NoError(err, "marshal response")
	return string(bz)
}
