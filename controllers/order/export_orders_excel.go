package orderControllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/papon78/RoyTopUpBazar/store"
	"github.com/tealeg/xlsx"
)

// GET /admin/orders/export-excel
func ExportOrdersToExcel(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := s.Orders()

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Date", "User", "Items", "Total", "Discount",
			"Status", "PaymentMethod", "PaymentPhone", "TransactionID",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.Date)
			row.AddCell().SetValue(o.UserID)

			var items []string
			for _, item := range o.Items {
				items = append(items, fmt.Sprintf("%s %s x%d", item.ProductTitle, item.OptionName, item.Quantity))
			}
			row.AddCell().SetValue(strings.Join(items, ", "))

			row.AddCell().SetValue(o.Total)
			row.AddCell().SetValue(o.DiscountApplied)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(string(o.PaymentMethod))
			row.AddCell().SetValue(o.PaymentPhone)
			row.AddCell().SetValue(o.TransactionID)
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
