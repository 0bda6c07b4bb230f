package postgres

import (
	"context"
	"fmt"
	"os"
	"time"

	"ucode/ucode_go_query_builder_service/config"
	"ucode/ucode_go_query_builder_service/models"
	span "ucode/ucode_go_query_builder_service/pkg/jaeger"
	"ucode/ucode_go_query_builder_service/sqlgen"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"
)

// Export runs a SELECT statement and writes the result to an xlsx report
// uploaded to object storage. Only SELECT statements are exportable.
func (r *runnerRepo) Export(ctx context.Context, stmt sqlgen.Statement, name string) (*models.ExportResult, error) {
	dbSpan, ctx := span.StartSpanFromContext(ctx, "runner.Export", stmt.SQL)
	defer dbSpan.Finish()

	if stmt.Kind != models.StatementSelect {
		return nil, errors.New("only select statements can be exported")
	}

	result, err := r.Run(ctx, stmt)
	if err != nil {
		return nil, err
	}

	if len(result.Rows) > config.MaxExportRows {
		result.Rows = result.Rows[:config.MaxExportRows]
	}

	file := excelize.NewFile()
	sheet := file.GetSheetName(file.GetActiveSheetIndex())

	for i, col := range result.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, errors.Wrap(err, "header cell name")
		}
		if err := file.SetCellValue(sheet, cell, col); err != nil {
			return nil, errors.Wrap(err, "set header cell")
		}
	}

	for rowIdx, row := range result.Rows {
		for colIdx, col := range result.Columns {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, errors.Wrap(err, "cell name")
			}

			value := row[col]
			if t, ok := value.(time.Time); ok {
				value = t.Format(config.DateTimeFormat)
			}

			if err := file.SetCellValue(sheet, cell, cast.ToString(value)); err != nil {
				return nil, errors.Wrap(err, "set cell")
			}
		}
	}

	var (
		filename = fmt.Sprintf("%s_%d.xlsx", reportName(name), time.Now().Unix())
		filepath = "./" + filename
	)

	if err := file.SaveAs(filepath); err != nil {
		return nil, errors.Wrap(err, "save report")
	}
	defer os.Remove(filepath)

	minioClient, err := minio.New(r.cfg.MinioHost, &minio.Options{
		Creds:  credentials.NewStaticV4(r.cfg.MinioAccessKeyID, r.cfg.MinioSecretKey, ""),
		Secure: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "minio.New")
	}

	_, err = minioClient.FPutObject(
		ctx,
		r.cfg.MinioBucket,
		filename,
		filepath,
		minio.PutObjectOptions{ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
	)
	if err != nil {
		return nil, errors.Wrap(err, "upload report")
	}

	return &models.ExportResult{
		Link:     fmt.Sprintf("%s/%s/%s", r.cfg.MinioHost, r.cfg.MinioBucket, filename),
		RowCount: len(result.Rows),
	}, nil
}

func reportName(name string) string {
	if name == "" {
		return "report"
	}
	return name
}
