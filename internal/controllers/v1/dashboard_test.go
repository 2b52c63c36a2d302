package v1_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// createTestTransaction records a transaction through the API.
func (suite *TestSuiteStandard) createTestTransaction(session testSession, transactionType, amount, description string) models.Transaction {
	recorder := test.Request(suite.T(), http.MethodPost, "/dashboard", map[string]string{
		"type":        transactionType,
		"amount":      amount,
		"description": description,
	}, session.authHeader())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	return response.Data
}

func (suite *TestSuiteStandard) TestCreateTransaction() {
	session := suite.createTestSession()

	transaction := suite.createTestTransaction(session, "Expense", "450", "Swiggy order #123")

	// The category comes from the description, not from the client
	assert.Equal(suite.T(), "Food", transaction.Category)
	assert.Equal(suite.T(), session.User.ID, transaction.UserID)
	assert.True(suite.T(), decimal.NewFromInt(450).Equal(transaction.Amount))
}

func (suite *TestSuiteStandard) TestCreateTransactionFallbackCategory() {
	session := suite.createTestSession()

	transaction := suite.createTestTransaction(session, "Expense", "12.99", "Netflix subscription")
	assert.Equal(suite.T(), "Others", transaction.Category)
}

// The dashboard form posts URL-encoded values, they bind like JSON.
func (suite *TestSuiteStandard) TestCreateTransactionForm() {
	session := suite.createTestSession()

	form := url.Values{}
	form.Set("type", "Income")
	form.Set("amount", "1000.50")
	form.Set("description", "Salary credited")

	headers := session.authHeader()
	headers["Content-Type"] = "application/x-www-form-urlencoded"

	recorder := test.Request(suite.T(), http.MethodPost, "/dashboard", form.Encode(), headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Salary", response.Data.Category)
}

func (suite *TestSuiteStandard) TestCreateTransactionInvalid() {
	session := suite.createTestSession()

	tests := []struct {
		name string
		body map[string]string
	}{
		{"empty body", nil},
		{"invalid type", map[string]string{"type": "Windfall", "amount": "10", "description": "mystery"}},
		{"missing amount", map[string]string{"type": "Expense", "description": "mystery"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "/dashboard", tt.body, session.authHeader())
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestGetDashboard() {
	session := suite.createTestSession()

	suite.createTestTransaction(session, "Income", "1000", "Salary credited")
	suite.createTestTransaction(session, "Expense", "300", "Swiggy order")
	suite.createTestTransaction(session, "Expense", "200", "zomato dinner")

	recorder := test.Request(suite.T(), http.MethodPost, "/add_budget", map[string]string{
		"category": "Food",
		"limit":    "500",
	}, session.authHeader())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodPost, "/set_goal", map[string]string{
		"goal": "1000",
	}, session.authHeader())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodGet, "/dashboard", nil, session.authHeader())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	data := response.Data
	assert.True(suite.T(), decimal.NewFromInt(1000).Equal(data.Income), "income is %s", data.Income)
	assert.True(suite.T(), decimal.NewFromInt(500).Equal(data.Expense), "expense is %s", data.Expense)
	assert.True(suite.T(), decimal.NewFromInt(500).Equal(data.Balance), "balance is %s", data.Balance)
	assert.Equal(suite.T(), []string{"Food"}, data.Categories.Labels)
	assert.Equal(suite.T(), []string{"Food budget exceeded!"}, data.Alerts)
	assert.True(suite.T(), decimal.NewFromInt(50).Equal(data.GoalProgress), "goal progress is %s", data.GoalProgress)
	assert.Len(suite.T(), data.Transactions, 3)
}

// A fresh user gets an empty dashboard, not an error.
func (suite *TestSuiteStandard) TestGetDashboardEmpty() {
	session := suite.createTestSession()

	recorder := test.Request(suite.T(), http.MethodGet, "/dashboard", nil, session.authHeader())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.True(suite.T(), response.Data.Balance.IsZero())
	assert.True(suite.T(), response.Data.GoalProgress.IsZero())
	assert.Len(suite.T(), response.Data.Transactions, 0)
}

// The dashboard only contains the current user's data.
func (suite *TestSuiteStandard) TestGetDashboardScoped() {
	jane := suite.createTestSession()
	john := suite.createTestSession()

	suite.createTestTransaction(jane, "Expense", "300", "Swiggy order")

	recorder := test.Request(suite.T(), http.MethodGet, "/dashboard", nil, john.authHeader())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data.Transactions, 0)
}

func (suite *TestSuiteStandard) TestDeleteTransaction() {
	session := suite.createTestSession()
	transaction := suite.createTestTransaction(session, "Expense", "300", "Swiggy order")

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/delete/%d", transaction.ID), nil, session.authHeader())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, "/dashboard", nil, session.authHeader())
	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data.Transactions, 0)
}

func (suite *TestSuiteStandard) TestDeleteTransactionNotFound() {
	session := suite.createTestSession()

	recorder := test.Request(suite.T(), http.MethodGet, "/delete/4711", nil, session.authHeader())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteTransactionInvalidID() {
	session := suite.createTestSession()

	recorder := test.Request(suite.T(), http.MethodGet, "/delete/nope", nil, session.authHeader())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

// Deleting another user's transaction is forbidden.
func (suite *TestSuiteStandard) TestDeleteTransactionOtherUser() {
	jane := suite.createTestSession()
	john := suite.createTestSession()

	transaction := suite.createTestTransaction(jane, "Expense", "300", "Swiggy order")

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/delete/%d", transaction.ID), nil, john.authHeader())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)

	// The transaction is still there for its owner
	recorder = test.Request(suite.T(), http.MethodGet, "/dashboard", nil, jane.authHeader())
	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data.Transactions, 1)
}
