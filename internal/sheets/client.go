// Package sheets wraps the Google Sheets values API as a row-oriented store.
package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Client reads and writes cell ranges of a single spreadsheet. All persistent
// application state lives behind it.
type Client struct {
	service       *sheetsapi.Service
	spreadsheetID string
}

func New(ctx context.Context, spreadsheetID string, credentialsJSON []byte) (*Client, error) {
	service, err := sheetsapi.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Client{service: service, spreadsheetID: spreadsheetID}, nil
}

// Read returns the rows of a range as strings. Trailing empty cells may be
// absent, so rows can be shorter than the addressed width.
func (c *Client) Read(ctx context.Context, readRange string) ([][]string, error) {
	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", readRange, err)
	}
	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = fmt.Sprint(cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Append adds rows after the last non-empty row of the range's table.
func (c *Client) Append(ctx context.Context, writeRange string, rows [][]string) error {
	_, err := c.service.Spreadsheets.Values.Append(c.spreadsheetID, writeRange, valueRange(rows)).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append %s: %w", writeRange, err)
	}
	return nil
}

// Update overwrites cells starting at the top-left of the range.
func (c *Client) Update(ctx context.Context, writeRange string, rows [][]string) error {
	_, err := c.service.Spreadsheets.Values.Update(c.spreadsheetID, writeRange, valueRange(rows)).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("update %s: %w", writeRange, err)
	}
	return nil
}

// Clear empties every cell in the range.
func (c *Client) Clear(ctx context.Context, clearRange string) error {
	_, err := c.service.Spreadsheets.Values.Clear(c.spreadsheetID, clearRange, &sheetsapi.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("clear %s: %w", clearRange, err)
	}
	return nil
}

func valueRange(rows [][]string) *sheetsapi.ValueRange {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}
	return &sheetsapi.ValueRange{Values: values}
}
