package productcontroller

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/papon78/RoyTopUpBazar/store"
	"github.com/tealeg/xlsx"
)

// GET /admin/products/export-excel
func ExportProductsToExcel(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := s.Products()

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Title", "Category", "Type", "Options", "Description", "Image",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, p := range products {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Title)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(string(p.Type))

			var opts []string
			for _, o := range p.Options {
				opts = append(opts, fmt.Sprintf("%s=%d", o.Name, o.Price))
			}
			row.AddCell().SetValue(strings.Join(opts, ","))

			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Image)
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
