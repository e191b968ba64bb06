package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

const spreadsheetMimeType = "application/vnd.google-apps.spreadsheet"

// GoogleConfig holds configuration for the Google Sheets client
type GoogleConfig struct {
	// CredentialsFile is a service account JSON key
	CredentialsFile string

	// HTTPClient overrides the authorized client, used in tests
	HTTPClient *http.Client

	// Endpoint overrides the API base URL, used in tests
	Endpoint string
}

// Google talks to Google Sheets for values and layout and to Google Drive
// for listing spreadsheets shared with the service account
type Google struct {
	sheets *sheetsapi.Service
	drive  *drive.Service
}

// NewGoogle creates a client authorized with service account credentials
func NewGoogle(ctx context.Context, cfg *GoogleConfig) (*Google, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		key, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w: %w", ErrUnavailable, err)
		}

		jwtConfig, err := google.JWTConfigFromJSON(key, sheetsapi.SpreadsheetsScope, drive.DriveScope)
		if err != nil {
			return nil, fmt.Errorf("parse service account file: %w: %w", ErrUnavailable, err)
		}
		httpClient = jwtConfig.Client(ctx)
	}

	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	sheetsService, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w: %w", ErrUnavailable, err)
	}

	driveService, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w: %w", ErrUnavailable, err)
	}

	return &Google{
		sheets: sheetsService,
		drive:  driveService,
	}, nil
}

func (g *Google) ListSpreadsheets(ctx context.Context) ([]Spreadsheet, error) {
	var spreadsheets []Spreadsheet
	pageToken := ""
	for {
		call := g.drive.Files.List().
			Q(fmt.Sprintf("mimeType='%s' and trashed=false", spreadsheetMimeType)).
			Fields("nextPageToken, files(id, name)").
			PageSize(100).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		list, err := call.Do()
		if err != nil {
			return nil, classify("list spreadsheets", err)
		}

		for _, f := range list.Files {
			spreadsheets = append(spreadsheets, Spreadsheet{ID: f.Id, Title: f.Name})
		}

		if list.NextPageToken == "" {
			return spreadsheets, nil
		}
		pageToken = list.NextPageToken
	}
}

func (g *Google) CreateSpreadsheet(ctx context.Context, title string) (*Spreadsheet, error) {
	created, err := g.sheets.Spreadsheets.Create(&sheetsapi.Spreadsheet{
		Properties: &sheetsapi.SpreadsheetProperties{Title: title},
	}).Context(ctx).Do()
	if err != nil {
		return nil, classify("create spreadsheet", err)
	}

	return &Spreadsheet{ID: created.SpreadsheetId, Title: title}, nil
}

func (g *Google) ListWorksheets(ctx context.Context, spreadsheetID string) ([]Worksheet, error) {
	spreadsheet, err := g.sheets.Spreadsheets.Get(spreadsheetID).
		Fields("sheets.properties").
		Context(ctx).
		Do()
	if err != nil {
		return nil, classify("list worksheets", err)
	}

	worksheets := make([]Worksheet, 0, len(spreadsheet.Sheets))
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties == nil {
			continue
		}
		worksheets = append(worksheets, toWorksheet(sheet.Properties))
	}
	return worksheets, nil
}

func (g *Google) AddWorksheet(ctx context.Context, spreadsheetID, title string, rows, cols int) (*Worksheet, error) {
	resp, err := g.batchUpdate(ctx, "add worksheet", spreadsheetID, &sheetsapi.Request{
		AddSheet: &sheetsapi.AddSheetRequest{
			Properties: &sheetsapi.SheetProperties{
				Title: title,
				GridProperties: &sheetsapi.GridProperties{
					RowCount:    int64(rows),
					ColumnCount: int64(cols),
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Replies) == 0 || resp.Replies[0].AddSheet == nil || resp.Replies[0].AddSheet.Properties == nil {
		return nil, fmt.Errorf("add worksheet: %w", ErrUnexpectedShape)
	}
	ws := toWorksheet(resp.Replies[0].AddSheet.Properties)
	return &ws, nil
}

func (g *Google) RenameWorksheet(ctx context.Context, spreadsheetID string, worksheetID int64, title string) error {
	_, err := g.batchUpdate(ctx, "rename worksheet", spreadsheetID, &sheetsapi.Request{
		UpdateSheetProperties: &sheetsapi.UpdateSheetPropertiesRequest{
			Properties: &sheetsapi.SheetProperties{
				SheetId:         worksheetID,
				Title:           title,
				ForceSendFields: []string{"SheetId"},
			},
			Fields: "title",
		},
	})
	return err
}

func (g *Google) DuplicateWorksheet(ctx context.Context, spreadsheetID string, sourceID int64, title string) (*Worksheet, error) {
	resp, err := g.batchUpdate(ctx, "duplicate worksheet", spreadsheetID, &sheetsapi.Request{
		DuplicateSheet: &sheetsapi.DuplicateSheetRequest{
			SourceSheetId:   sourceID,
			NewSheetName:    title,
			ForceSendFields: []string{"SourceSheetId"},
		},
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Replies) == 0 || resp.Replies[0].DuplicateSheet == nil || resp.Replies[0].DuplicateSheet.Properties == nil {
		return nil, fmt.Errorf("duplicate worksheet: %w", ErrUnexpectedShape)
	}
	ws := toWorksheet(resp.Replies[0].DuplicateSheet.Properties)
	return &ws, nil
}

func (g *Google) GetValues(ctx context.Context, spreadsheetID string, rng Range) ([][]string, error) {
	resp, err := g.sheets.Spreadsheets.Values.Get(spreadsheetID, rng.A1()).Context(ctx).Do()
	if err != nil {
		return nil, classify("get values", err)
	}

	values := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, v := range row {
			cells = append(cells, cellString(v))
		}
		values = append(values, cells)
	}
	return values, nil
}

func (g *Google) UpdateValues(ctx context.Context, spreadsheetID string, rng Range, values [][]any) error {
	_, err := g.sheets.Spreadsheets.Values.Update(spreadsheetID, rng.A1(), &sheetsapi.ValueRange{Values: values}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return classify("update values", err)
	}
	return nil
}

func (g *Google) AppendValues(ctx context.Context, spreadsheetID string, rng Range, values [][]any) error {
	_, err := g.sheets.Spreadsheets.Values.Append(spreadsheetID, rng.A1(), &sheetsapi.ValueRange{Values: values}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return classify("append values", err)
	}
	return nil
}

func (g *Google) DeleteRows(ctx context.Context, spreadsheetID string, worksheetID int64, start, end int) error {
	_, err := g.batchUpdate(ctx, "delete rows", spreadsheetID, &sheetsapi.Request{
		DeleteDimension: &sheetsapi.DeleteDimensionRequest{
			Range: &sheetsapi.DimensionRange{
				SheetId:         worksheetID,
				Dimension:       "ROWS",
				StartIndex:      int64(start),
				EndIndex:        int64(end),
				ForceSendFields: []string{"SheetId", "StartIndex"},
			},
		},
	})
	return err
}

func (g *Google) ApplyLayout(ctx context.Context, spreadsheetID string, worksheetID int64, directives []Directive) error {
	if len(directives) == 0 {
		return nil
	}

	requests := make([]*sheetsapi.Request, 0, len(directives))
	for _, d := range directives {
		switch dir := d.(type) {
		case Merge:
			requests = append(requests, &sheetsapi.Request{
				MergeCells: &sheetsapi.MergeCellsRequest{
					Range:     gridRange(worksheetID, dir.Range),
					MergeType: "MERGE_ALL",
				},
			})
		case Format:
			requests = append(requests, &sheetsapi.Request{
				RepeatCell: &sheetsapi.RepeatCellRequest{
					Range: gridRange(worksheetID, dir.Range),
					Cell: &sheetsapi.CellData{
						UserEnteredFormat: &sheetsapi.CellFormat{
							TextFormat: &sheetsapi.TextFormat{
								FontSize: int64(dir.Style.FontSize),
								Bold:     dir.Style.Bold,
								Italic:   dir.Style.Italic,
							},
							HorizontalAlignment: dir.Style.Horizontal,
							VerticalAlignment:   dir.Style.Vertical,
						},
					},
					Fields: "userEnteredFormat(textFormat,horizontalAlignment,verticalAlignment)",
				},
			})
		case ColumnWidth:
			requests = append(requests, &sheetsapi.Request{
				UpdateDimensionProperties: &sheetsapi.UpdateDimensionPropertiesRequest{
					Range: &sheetsapi.DimensionRange{
						SheetId:         worksheetID,
						Dimension:       "COLUMNS",
						StartIndex:      int64(dir.Start),
						EndIndex:        int64(dir.End),
						ForceSendFields: []string{"SheetId", "StartIndex"},
					},
					Properties: &sheetsapi.DimensionProperties{PixelSize: int64(dir.Pixels)},
					Fields:     "pixelSize",
				},
			})
		default:
			return fmt.Errorf("layout directive %T: %w", d, ErrUnexpectedShape)
		}
	}

	_, err := g.batchUpdate(ctx, "apply layout", spreadsheetID, requests...)
	return err
}

func (g *Google) batchUpdate(ctx context.Context, op, spreadsheetID string, requests ...*sheetsapi.Request) (*sheetsapi.BatchUpdateSpreadsheetResponse, error) {
	resp, err := g.sheets.Spreadsheets.BatchUpdate(spreadsheetID, &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}).Context(ctx).Do()
	if err != nil {
		return nil, classify(op, err)
	}
	return resp, nil
}

func toWorksheet(p *sheetsapi.SheetProperties) Worksheet {
	ws := Worksheet{
		ID:    p.SheetId,
		Title: p.Title,
		Index: int(p.Index),
	}
	if p.GridProperties != nil {
		ws.RowCount = int(p.GridProperties.RowCount)
		ws.ColCount = int(p.GridProperties.ColumnCount)
	}
	return ws
}

// gridRange converts a 1-based inclusive range into the API's 0-based
// half-open indexes
func gridRange(worksheetID int64, rng Range) *sheetsapi.GridRange {
	rng = normalize(rng)
	gr := &sheetsapi.GridRange{
		SheetId:          worksheetID,
		StartRowIndex:    int64(rng.StartRow - 1),
		StartColumnIndex: int64(rng.StartCol - 1),
		ForceSendFields:  []string{"SheetId", "StartRowIndex", "StartColumnIndex"},
	}
	if rng.EndRow > 0 {
		gr.EndRowIndex = int64(rng.EndRow)
	}
	if rng.EndCol > 0 {
		gr.EndColumnIndex = int64(rng.EndCol)
	}
	return gr
}

// classify wraps an API error with the matching error kind
func classify(op string, err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	}

	switch {
	case apiErr.Code == http.StatusNotFound:
		return fmt.Errorf("%s: %w: %w", op, ErrNotFound, err)
	case apiErr.Code == http.StatusBadRequest && strings.Contains(apiErr.Message, "Unable to parse range"):
		// a range naming a missing worksheet
		return fmt.Errorf("%s: %w: %w", op, ErrNotFound, err)
	case apiErr.Code == http.StatusBadRequest && strings.Contains(apiErr.Message, "already exists"):
		return fmt.Errorf("%s: %w: %w", op, ErrAlreadyExists, err)
	case apiErr.Code == http.StatusBadRequest:
		return fmt.Errorf("%s: %w: %w", op, ErrUnexpectedShape, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
}
