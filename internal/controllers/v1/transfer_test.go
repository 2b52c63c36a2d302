package v1_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"testing"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

// multipartFile builds a multipart request body with the content as the
// "file" form field.
func multipartFile(suite *TestSuiteStandard, content string) (*bytes.Buffer, string) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", "transactions.csv")
	if err != nil {
		suite.Assert().FailNow("could not create form file", "Error: %s", err)
	}

	_, err = part.Write([]byte(content))
	if err != nil {
		suite.Assert().FailNow("could not write file content", "Error: %s", err)
	}

	if err := writer.Close(); err != nil {
		suite.Assert().FailNow("could not close multipart writer", "Error: %s", err)
	}

	return body, writer.FormDataContentType()
}

func (suite *TestSuiteStandard) TestImportCSV() {
	session := suite.createTestSession()

	body, contentType := multipartFile(suite, "Type,Category,Description,Amount,Date\n"+
		"Expense,Food,Swiggy order,450,2024-05\n"+
		"Income,Salary,Monthly salary,50000,2024-05\n")

	headers := session.authHeader()
	headers["Content-Type"] = contentType

	recorder := test.Request(suite.T(), http.MethodPost, "/import_csv", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TransactionImportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if assert.Len(suite.T(), response.Data, 2) {
		// The category comes from the file, it is not re-detected
		assert.Equal(suite.T(), "Food", response.Data[0].Category)
		assert.True(suite.T(), decimal.NewFromInt(450).Equal(response.Data[0].Amount))
		assert.Equal(suite.T(), "2024-05", response.Data[0].Period.String())
		assert.Equal(suite.T(), session.User.ID, response.Data[0].UserID)
	}
}

// Imported rows show up on the dashboard like manually added ones.
func (suite *TestSuiteStandard) TestImportCSVDashboard() {
	session := suite.createTestSession()

	body, contentType := multipartFile(suite, "Type,Category,Description,Amount,Date\n"+
		"Expense,Food,Swiggy order,450,2024-05\n")

	headers := session.authHeader()
	headers["Content-Type"] = contentType

	recorder := test.Request(suite.T(), http.MethodPost, "/import_csv", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.T(), http.MethodGet, "/dashboard", nil, session.authHeader())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var dashboard v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &dashboard)
	assert.Len(suite.T(), dashboard.Data.Transactions, 1)
	assert.True(suite.T(), decimal.NewFromInt(450).Equal(dashboard.Data.Expense))
}

// A file with only the header imports zero transactions.
func (suite *TestSuiteStandard) TestImportCSVHeaderOnly() {
	session := suite.createTestSession()

	body, contentType := multipartFile(suite, "Type,Category,Description,Amount,Date\n")

	headers := session.authHeader()
	headers["Content-Type"] = contentType

	recorder := test.Request(suite.T(), http.MethodPost, "/import_csv", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TransactionImportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 0)
}

func (suite *TestSuiteStandard) TestImportCSVInvalid() {
	session := suite.createTestSession()

	tests := []struct {
		name    string
		content string
	}{
		{"wrong header", "Kind,Category,Description,Amount,Date\n"},
		{"empty file", ""},
		{"invalid type", "Type,Category,Description,Amount,Date\nWindfall,Food,mystery,10,2024-05\n"},
		{"invalid amount", "Type,Category,Description,Amount,Date\nExpense,Food,Swiggy,lots,2024-05\n"},
		{"invalid date", "Type,Category,Description,Amount,Date\nExpense,Food,Swiggy,10,yesterday\n"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			body, contentType := multipartFile(suite, tt.content)

			headers := session.authHeader()
			headers["Content-Type"] = contentType

			recorder := test.Request(t, http.MethodPost, "/import_csv", body, headers)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestImportCSVNoFile() {
	session := suite.createTestSession()

	recorder := test.Request(suite.T(), http.MethodPost, "/import_csv", nil, session.authHeader())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExport() {
	session := suite.createTestSession()

	suite.createTestTransaction(session, "Expense", "450", "Swiggy order")
	suite.createTestTransaction(session, "Income", "1000", "Salary credited")

	recorder := test.Request(suite.T(), http.MethodGet, "/export", nil, session.authHeader())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	assert.Contains(suite.T(), recorder.Header().Get("Content-Disposition"), "centsible_export.xlsx")
	assert.Equal(suite.T(), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", recorder.Header().Get("Content-Type"))

	workbook, err := excelize.OpenReader(bytes.NewReader(recorder.Body.Bytes()))
	if err != nil {
		suite.Assert().FailNow("could not open exported workbook", "Error: %s", err)
	}
	defer workbook.Close()

	rows, err := workbook.GetRows(workbook.GetSheetName(0))
	assert.Nil(suite.T(), err)

	if assert.Len(suite.T(), rows, 3) {
		assert.Equal(suite.T(), []string{"ID", "Type", "Category", "Description", "Amount", "Date"}, rows[0])
		assert.Equal(suite.T(), "Expense", rows[1][1])
		assert.Equal(suite.T(), "Food", rows[1][2])
		assert.Equal(suite.T(), "450", rows[1][4])
	}
}

// The export contains only the requesting user's transactions.
func (suite *TestSuiteStandard) TestExportScoped() {
	jane := suite.createTestSession()
	john := suite.createTestSession()

	suite.createTestTransaction(jane, "Expense", "450", "Swiggy order")

	recorder := test.Request(suite.T(), http.MethodGet, "/export", nil, john.authHeader())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	workbook, err := excelize.OpenReader(bytes.NewReader(recorder.Body.Bytes()))
	if err != nil {
		suite.Assert().FailNow("could not open exported workbook", "Error: %s", err)
	}
	defer workbook.Close()

	rows, err := workbook.GetRows(workbook.GetSheetName(0))
	assert.Nil(suite.T(), err)

	// Header only
	assert.Len(suite.T(), rows, 1)
}
