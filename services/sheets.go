package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Ahsin6/Mood-Tracker/models"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const spreadsheetMimeType = "application/vnd.google-apps.spreadsheet"

// SheetsClient Google 表格客户端，持有 Sheets 与 Drive 两个服务
type SheetsClient struct {
	sheets *sheets.Service
	drive  *drive.Service
}

// serviceAccountKey 服务账号凭证的完整结构，未知字段一律拒绝
type serviceAccountKey struct {
	Type                    string `json:"type"`
	ProjectID               string `json:"project_id"`
	PrivateKeyID            string `json:"private_key_id"`
	PrivateKey              string `json:"private_key"`
	ClientEmail             string `json:"client_email"`
	ClientID                string `json:"client_id"`
	AuthURI                 string `json:"auth_uri"`
	TokenURI                string `json:"token_uri"`
	AuthProviderX509CertURL string `json:"auth_provider_x509_cert_url"`
	ClientX509CertURL       string `json:"client_x509_cert_url"`
	UniverseDomain          string `json:"universe_domain"`
}

// parseServiceAccountKey 严格校验凭证 JSON，格式不符直接拒绝
func parseServiceAccountKey(data []byte) (*serviceAccountKey, error) {
	var key serviceAccountKey
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&key); err != nil {
		return nil, fmt.Errorf("凭证 JSON 解析失败: %w", err)
	}
	if key.Type != "service_account" {
		return nil, fmt.Errorf("凭证类型必须为 service_account，实际为 %q", key.Type)
	}
	if key.ClientEmail == "" || key.PrivateKey == "" {
		return nil, fmt.Errorf("凭证缺少 client_email 或 private_key 字段")
	}
	return &key, nil
}

// NewSheetsClient 从服务账号凭证创建会话，授权范围为表格读写与文件管理
func NewSheetsClient(ctx context.Context, credentialJSON string) (*SheetsClient, error) {
	data := []byte(credentialJSON)
	if _, err := parseServiceAccountKey(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuth, err)
	}

	jwtConf, err := google.JWTConfigFromJSON(data, sheets.SpreadsheetsScope, drive.DriveScope)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuth, err)
	}
	httpClient := jwtConf.Client(ctx)

	sheetsSvc, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuth, err)
	}
	driveSvc, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuth, err)
	}

	return &SheetsClient{
		sheets: sheetsSvc,
		drive:  driveSvc,
	}, nil
}

// OpenOrCreate 按名称查找表格，不存在则新建并写入表头
// 同名表格取第一个匹配；跨进程并发首次创建可能产生重复，属已知缺口
func (sc *SheetsClient) OpenOrCreate(ctx context.Context, name string) (*models.SpreadsheetHandle, error) {
	query := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false",
		strings.ReplaceAll(name, "'", `\'`), spreadsheetMimeType)
	list, err := sc.drive.Files.List().Q(query).PageSize(1).Fields("files(id, name)").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLookup, err)
	}

	if len(list.Files) > 0 {
		ss, err := sc.sheets.Spreadsheets.Get(list.Files[0].Id).Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLookup, err)
		}
		return &models.SpreadsheetHandle{
			ID:         ss.SpreadsheetId,
			SheetTitle: firstSheetTitle(ss),
		}, nil
	}

	// 新建表格
	ss, err := sc.sheets.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: name},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreate, err)
	}

	// 任何持有链接的人可写
	perm := &drive.Permission{Type: "anyone", Role: "writer"}
	if _, err := sc.drive.Permissions.Create(ss.SpreadsheetId, perm).Context(ctx).Do(); err != nil {
		return nil, fmt.Errorf("%w: 设置共享失败: %v", ErrCreate, err)
	}

	handle := &models.SpreadsheetHandle{
		ID:         ss.SpreadsheetId,
		SheetTitle: firstSheetTitle(ss),
		Created:    true,
	}

	// 写入固定表头
	header := make([]interface{}, len(models.SheetHeader))
	for i, h := range models.SheetHeader {
		header[i] = h
	}
	if err := sc.AppendRow(ctx, handle, header); err != nil {
		return nil, fmt.Errorf("%w: 写入表头失败: %v", ErrCreate, err)
	}
	return handle, nil
}

// AppendRow 追加一行，单次网络调用
func (sc *SheetsClient) AppendRow(ctx context.Context, handle *models.SpreadsheetHandle, fields []interface{}) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{fields}}
	_, err := sc.sheets.Spreadsheets.Values.Append(handle.ID, handle.SheetTitle, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAppend, err)
	}
	return nil
}

// ReadAllRows 读取第一个工作表的全部数据行，按表头取字段名，保持存储顺序
// 表头不会在读取时再校验，被重排或删除会导致列错位
func (sc *SheetsClient) ReadAllRows(ctx context.Context, handle *models.SpreadsheetHandle) ([]map[string]string, error) {
	resp, err := sc.sheets.Spreadsheets.Values.Get(handle.ID, handle.SheetTitle).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	if len(resp.Values) < 2 {
		// 空表或仅有表头
		return nil, nil
	}

	header := make([]string, len(resp.Values[0]))
	for i, cell := range resp.Values[0] {
		header[i] = fmt.Sprint(cell)
	}

	records := make([]map[string]string, 0, len(resp.Values)-1)
	for _, row := range resp.Values[1:] {
		record := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				record[name] = fmt.Sprint(row[i])
			} else {
				record[name] = ""
			}
		}
		records = append(records, record)
	}
	return records, nil
}

func firstSheetTitle(ss *sheets.Spreadsheet) string {
	if len(ss.Sheets) > 0 && ss.Sheets[0].Properties != nil {
		return ss.Sheets[0].Properties.Title
	}
	return "Sheet1"
}
