package v1_test

import (
	"net/http"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestUpdateNetWorth() {
	session := suite.createTestSession()

	recorder := test.Request(suite.T(), http.MethodPost, "/update_networth", map[string]string{
		"asset":     "15000",
		"liability": "4000",
	}, session.authHeader())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.NetWorthResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.True(suite.T(), decimal.NewFromInt(11000).Equal(response.Data.NetWorth()))
	assert.False(suite.T(), response.Data.Period.IsZero())
}

// Every update appends a sample, history is never overwritten.
func (suite *TestSuiteStandard) TestUpdateNetWorthAppends() {
	session := suite.createTestSession()

	for _, asset := range []string{"1000", "1200"} {
		recorder := test.Request(suite.T(), http.MethodPost, "/update_networth", map[string]string{
			"asset":     asset,
			"liability": "0",
		}, session.authHeader())
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)
	}

	recorder := test.Request(suite.T(), http.MethodGet, "/dashboard", nil, session.authHeader())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data.NetWorth.Values, 2)
	assert.True(suite.T(), decimal.NewFromInt(1000).Equal(response.Data.NetWorth.Values[0]))
	assert.True(suite.T(), decimal.NewFromInt(1200).Equal(response.Data.NetWorth.Values[1]))
}

func (suite *TestSuiteStandard) TestUpdateNetWorthInvalid() {
	recorder := test.Request(suite.T(), http.MethodPost, "/update_networth", map[string]string{
		"asset": "a house",
	}, suite.createTestSession().authHeader())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
