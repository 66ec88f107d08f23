package formatting

import "fmt"

// FormatPrice форматирует цену в рупиях
func FormatPrice(price int) string {
	return fmt.Sprintf("₹%d", price)
}

// FormatPriceRange форматирует бюджетную вилку заявки
func FormatPriceRange(minPrice, maxPrice int) string {
	return fmt.Sprintf("%s – %s", FormatPrice(minPrice), FormatPrice(maxPrice))
}
