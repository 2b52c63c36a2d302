package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/importer/csvimport"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// @Summary		Import transactions
// @Description	Bulk-imports transactions from a CSV file with the columns Type,Category,Description,Amount,Date
// @Tags			Transfer
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	TransactionImportResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Param			file	formData	file	true	"The CSV file"
// @Router			/import_csv [post]
func ImportCSV(c *gin.Context) {
	formFile, err := c.FormFile("file")
	if formFile == nil || err != nil {
		c.JSON(status(errNoFilePost), httpError{Error: errNoFilePost.Error()})
		return
	}

	f, err := formFile.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}
	defer f.Close()

	transactions, err := csvimport.Parse(f, currentUserID(c))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if len(transactions) > 0 {
		err = models.DB.Create(&transactions).Error
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}
	}

	c.JSON(http.StatusCreated, TransactionImportResponse{Data: transactions})
}

// exportColumns is the header row of the export workbook.
var exportColumns = []interface{}{"ID", "Type", "Category", "Description", "Amount", "Date"}

// @Summary		Export transactions
// @Description	Streams an XLSX workbook with all transactions of the current user
// @Tags			Transfer
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200
// @Failure		401	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/export [get]
func Export(c *gin.Context) {
	// Export only the requesting user's transactions
	transactions, err := models.TransactionsForUser(currentUserID(c))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	workbook := excelize.NewFile()
	defer func() {
		if err := workbook.Close(); err != nil {
			log.Error().Msgf("could not close workbook: %v", err)
		}
	}()

	sheet := workbook.GetSheetName(0)

	err = workbook.SetSheetRow(sheet, "A1", &exportColumns)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
		return
	}

	for i, transaction := range transactions {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
			return
		}

		err = workbook.SetSheetRow(sheet, cell, &[]interface{}{
			transaction.ID,
			string(transaction.Type),
			transaction.Category,
			transaction.Description,
			transaction.Amount.String(),
			transaction.Period.String(),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
			return
		}
	}

	c.Header("Content-Disposition", `attachment; filename="centsible_export.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	err = workbook.Write(c.Writer)
	if err != nil {
		log.Error().Msgf("could not write workbook: %v", err)
	}
}
