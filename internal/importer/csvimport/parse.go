// Package csvimport parses transaction CSV files for bulk import.
package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Column indices of the import format.
const (
	Type = iota
	Category
	Description
	Amount
	Date
)

// Header is the required first line of an import file.
var Header = []string{"Type", "Category", "Description", "Amount", "Date"}

var ErrHeaderInvalid = fmt.Errorf("the CSV header must be exactly: %s,%s,%s,%s,%s", Header[0], Header[1], Header[2], Header[3], Header[4])

// Parse reads a transaction CSV file and returns the transactions it
// contains, owned by the user.
//
// Rows are returned exactly as read: the category is taken from the
// file, not re-detected.
func Parse(f io.Reader, userID uint) ([]models.Transaction, error) {
	reader := csv.NewReader(f)

	// We can reuse the array in the background to improve performance
	reader.ReuseRecord = true

	// The first line must be the expected header
	header, err := reader.Read()
	if err == io.EOF {
		return []models.Transaction{}, ErrHeaderInvalid
	}
	if err != nil {
		return csvReadError(reader, fmt.Errorf("could not read line in CSV: %w", err))
	}

	if len(header) != len(Header) {
		return []models.Transaction{}, ErrHeaderInvalid
	}
	for i, name := range Header {
		if header[i] != name {
			return []models.Transaction{}, ErrHeaderInvalid
		}
	}

	var transactions []models.Transaction

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return csvReadError(reader, fmt.Errorf("could not read line in CSV: %w", err))
		}

		transactionType := models.TransactionType(record[Type])
		if transactionType != models.TypeIncome && transactionType != models.TypeExpense {
			return csvReadError(reader, models.ErrTransactionTypeInvalid)
		}

		amount, err := decimal.NewFromString(record[Amount])
		if err != nil {
			return csvReadError(reader, errors.New("the amount could not be parsed to a decimal"))
		}

		period, err := types.ParsePeriod(record[Date])
		if err != nil {
			return csvReadError(reader, errors.New("the date must be a YYYY-MM period label"))
		}

		transactions = append(transactions, models.Transaction{
			UserID:      userID,
			Type:        transactionType,
			Category:    record[Category],
			Description: record[Description],
			Amount:      amount,
			Period:      period,
		})
	}

	return transactions, nil
}

// csvReadError returns an error including the line of the input the
// error occurred in.
func csvReadError(r *csv.Reader, err error) ([]models.Transaction, error) {
	// always use the first field, we are only interested in the line
	line, _ := r.FieldPos(1)

	return []models.Transaction{}, fmt.Errorf("error in line %d of the CSV: %w", line, err)
}
