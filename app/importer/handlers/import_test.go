package handlers

import (
	"context"
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seed-inventory/app/importer/config"
	"seed-inventory/app/server/models"
	"strings"
	"testing"
)

func TestImport(t *testing.T) {
	a, db, logs := newTestApp(t, nil)

	input := "_id,Seed_RepDate,Seed_Year,Seeds_YearWeek,Seed_Varity,Seed_RDCSD,Seed_Stock2Sale,Seed_Season,Seed_Crop _Year\n" +
		"R-1,20230105,2023,202301,RD41,C01,\"1,234.50\",1,2022/23\n" +
		"R-2,20230105,twenty,202301,RD41,C01,1.5,1,2022/23\n" +
		"R-3,20230112,2023,202302,KDML105,C02,,2,2022/23\n"

	summary, err := a.Import(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.Inserted)
	assert.Equal(t, int64(1), summary.Failed)

	var records []models.Record
	require.NoError(t, db.Order("id ASC").Find(&records).Error)
	require.Len(t, records, 2)

	assert.Equal(t, models.Record{
		ID:         "R-1",
		RepDate:    20230105,
		Year:       2023,
		YearWeek:   202301,
		Variety:    "RD41",
		RDCSD:      "C01",
		Stock2Sale: 1234.5,
		Season:     1,
		CropYear:   "2022/23",
	}, records[0])
	assert.Equal(t, "R-3", records[1].ID)
	assert.Zero(t, records[1].Stock2Sale)

	failures := logs.FilterMessage("failed to parse row").All()
	require.Len(t, failures, 1)
	assert.Equal(t, int64(2), failures[0].ContextMap()["row"])
	assert.Equal(t, "R-2", failures[0].ContextMap()["id"])

	done := logs.FilterMessage("import finished").All()
	require.Len(t, done, 1)
	assert.Equal(t, int64(2), done[0].ContextMap()["inserted"])
	assert.Equal(t, int64(1), done[0].ContextMap()["failed"])
}

func TestImport_DuplicatesAreSkipped(t *testing.T) {
	a, db, logs := newTestApp(t, &config.Config{Concurrency: 1})

	input := csvHeader +
		"R-1,20230105,2023,202301,RD41,C01,10,1,2022/23\n" +
		"R-2,20230105,2023,202301,RD41,C01,20,1,2022/23\n"

	summary, err := a.Import(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.Inserted)

	// 重新执行一次，已存在的 ID 逐行失败
	summary, err = a.Import(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Zero(t, summary.Inserted)
	assert.Equal(t, int64(2), summary.Failed)
	assert.Len(t, logs.FilterMessage("failed to save row").All(), 2)

	var counter int64
	require.NoError(t, db.Model(&models.Record{}).Count(&counter).Error)
	assert.Equal(t, int64(2), counter)
}

func TestImport_MissingID(t *testing.T) {
	a, _, logs := newTestApp(t, nil)

	input := csvHeader + ",20230105,2023,202301,RD41,C01,10,1,2022/23\n"

	summary, err := a.Import(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Zero(t, summary.Inserted)
	assert.Equal(t, int64(1), summary.Failed)
	assert.Equal(t, int64(1), logs.FilterMessage("failed to parse row").All()[0].ContextMap()["row"])
}

func TestImport_ManyRowsUnderLimit(t *testing.T) {
	a, db, _ := newTestApp(t, &config.Config{Concurrency: 3})

	var b strings.Builder
	b.WriteString(csvHeader)
	for i := 0; i < 50; i++ {
		fmt.Fprintf(&b, "R-%03d,20230105,2023,202301,RD41,C01,10,1,2022/23\n", i)
	}

	summary, err := a.Import(context.Background(), strings.NewReader(b.String()))
	require.NoError(t, err)
	assert.Equal(t, int64(50), summary.Inserted)
	assert.Zero(t, summary.Failed)

	var counter int64
	require.NoError(t, db.Model(&models.Record{}).Count(&counter).Error)
	assert.Equal(t, int64(50), counter)
}

func TestImport_MalformedCSV(t *testing.T) {
	a, _, _ := newTestApp(t, nil)

	// 列数不一致时整个读取失败
	input := csvHeader + "R-1,20230105\n"

	_, err := a.Import(context.Background(), strings.NewReader(input))
	assert.Error(t, err)
}

func TestImport_StopsWritingAfterCancel(t *testing.T) {
	a, db, logs := newTestApp(t, nil)

	input := csvHeader +
		"R-1,20230105,2023,202301,RD41,C01,10,1,2022/23\n" +
		"R-2,20230105,2023,202301,RD41,C01,20,1,2022/23\n" +
		"R-3,20230105,2023,202301,RD41,C01,30,1,2022/23\n"

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := a.Import(ctx, strings.NewReader(input))
	require.NoError(t, err)
	assert.Zero(t, summary.Inserted)
	assert.Zero(t, summary.Failed)
	assert.Equal(t, int64(3), summary.Skipped)

	// 只提示一次，不逐行报错
	assert.Len(t, logs.FilterMessage("import interrupted, skipping remaining rows").All(), 1)
	assert.Empty(t, logs.FilterMessage("failed to save row").All())

	var counter int64
	require.NoError(t, db.Model(&models.Record{}).Count(&counter).Error)
	assert.Zero(t, counter)
}
