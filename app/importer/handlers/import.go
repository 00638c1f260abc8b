package handlers

import (
	"context"
	"fmt"
	"github.com/gocarina/gocsv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"io"
	"sync/atomic"
)

type Summary struct {
	Inserted int64
	Failed   int64
	Skipped  int64 // 中断后没有写入的行
}

// Import 逐行读取 CSV 并写入数据库。单行失败只记录日志并跳过，不会中止整个导入
func (a *App) Import(ctx context.Context, r io.Reader) (*Summary, error) {
	var (
		inserted, failed, skipped atomic.Int64
		g                         errgroup.Group
		row                       int // 数据行序号，不含表头，从 1 开始
	)

	// 限制同时进行的写入，达到上限时读取会阻塞
	g.SetLimit(a.concurrency())

	readErr := gocsv.UnmarshalToCallback(r, func(rec csvRow) {
		row++
		rowNo := row

		// 收到中断信号后不再写入，剩下的行只计数
		if ctx.Err() != nil {
			if skipped.Add(1) == 1 {
				a.l.Warn("import interrupted, skipping remaining rows", zap.Int("row", rowNo), zap.Error(ctx.Err()))
			}
			return
		}

		record, err := rec.toRecord()
		if err != nil {
			a.l.Error("failed to parse row", zap.Int("row", rowNo), zap.String("id", rec.ID), zap.Error(err))
			failed.Add(1)
			return
		}

		g.Go(func() error {
			if err := a.db.WithContext(ctx).Create(record).Error; err != nil {
				a.l.Error("failed to save row", zap.Int("row", rowNo), zap.String("id", record.ID), zap.Error(err))
				failed.Add(1)
				return nil
			}
			inserted.Add(1)
			return nil
		})
	})

	// 等待已经开始的写入结束
	_ = g.Wait()

	summary := &Summary{
		Inserted: inserted.Load(),
		Failed:   failed.Load(),
		Skipped:  skipped.Load(),
	}

	if readErr != nil {
		a.l.Error("import aborted while reading", zap.Int("row", row), zap.Error(readErr))
		return summary, fmt.Errorf("read csv: %w", readErr)
	}

	a.l.Info("import finished",
		zap.Int64("inserted", summary.Inserted),
		zap.Int64("failed", summary.Failed),
		zap.Int64("skipped", summary.Skipped),
	)

	return summary, nil
}

func (a *App) concurrency() int {
	if a.cfg.Concurrency < 1 {
		return 1
	}
	return a.cfg.Concurrency
}
