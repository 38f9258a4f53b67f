package admin

import (
	"github.com/SscSPs/currency_admin/internal/core/domain"
	"github.com/SscSPs/currency_admin/internal/utils"
)

// Column describes one column of the currency table for a renderer.
type Column struct {
	Header string
	Key    string
	Render func(domain.Currency) string
}

// CurrencyColumns are the columns of the currency table, in display order.
var CurrencyColumns = []Column{
	{Header: "Currency", Key: FieldCode, Render: utils.FormatCurrencyLabel},
	{Header: "Rate to USD", Key: FieldExchangeRateToUSD, Render: func(c domain.Currency) string {
		return utils.FormatRateToUSD(c.ExchangeRateToUSD)
	}},
	{Header: "Base Currency", Key: FieldIsBaseCurrency, Render: func(c domain.Currency) string {
		return utils.FormatYesNo(c.IsBaseCurrency)
	}},
	{Header: "Status", Key: FieldIsActive, Render: func(c domain.Currency) string {
		return utils.FormatActiveStatus(c.IsActive)
	}},
	{Header: "Last Updated", Key: "lastUpdated", Render: func(c domain.Currency) string {
		return utils.FormatLocalTime(c.LastUpdatedAt)
	}},
}

// Headers returns the header row for columns.
func Headers(columns []Column) []string {
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}
	return headers
}

// RenderRows renders each currency through columns.
func RenderRows(columns []Column, currencies []domain.Currency) [][]string {
	rows := make([][]string, 0, len(currencies))
	for _, c := range currencies {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = col.Render(c)
		}
		rows = append(rows, row)
	}
	return rows
}
