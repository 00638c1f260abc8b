package handlers

import (
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"net/http"
	"seed-inventory/app/server/gen/oapi"
	"seed-inventory/app/server/models"
)

func (a *App) recordMapFields(req *oapi.DataCreateJSONRequestBody, record *models.Record) {
	record.ID = string(req.Id)

	if req.SeedRepDate != nil {
		record.RepDate = int64(*req.SeedRepDate)
	}
	if req.SeedYear != nil {
		record.Year = int(*req.SeedYear)
	}
	if req.SeedsYearWeek != nil {
		record.YearWeek = int(*req.SeedsYearWeek)
	}
	if req.SeedVarity != nil {
		record.Variety = string(*req.SeedVarity)
	}
	if req.SeedRDCSD != nil {
		record.RDCSD = string(*req.SeedRDCSD)
	}
	if req.SeedStock2Sale != nil {
		record.Stock2Sale = float64(*req.SeedStock2Sale)
	}
	if req.SeedSeason != nil {
		record.Season = int(*req.SeedSeason)
	}
	if req.SeedCropYear != nil {
		record.CropYear = string(*req.SeedCropYear)
	}
}

// recordUpdateColumns 未出现在请求体中的字段保持不变
func (a *App) recordUpdateColumns(req *oapi.DataUpdateJSONRequestBody) map[string]interface{} {
	cols := map[string]interface{}{}
	if req.SeedRepDate != nil {
		cols["rep_date"] = int64(*req.SeedRepDate)
	}
	if req.SeedYear != nil {
		cols["year"] = int(*req.SeedYear)
	}
	if req.SeedsYearWeek != nil {
		cols["year_week"] = int(*req.SeedsYearWeek)
	}
	if req.SeedVarity != nil {
		cols["variety"] = string(*req.SeedVarity)
	}
	if req.SeedRDCSD != nil {
		cols["rdcsd"] = string(*req.SeedRDCSD)
	}
	if req.SeedStock2Sale != nil {
		cols["stock2sale"] = float64(*req.SeedStock2Sale)
	}
	if req.SeedSeason != nil {
		cols["season"] = int(*req.SeedSeason)
	}
	if req.SeedCropYear != nil {
		cols["crop_year"] = string(*req.SeedCropYear)
	}
	return cols
}

func (a *App) DataList(c echo.Context) error {
	rctx := c.Request().Context()

	records := []models.Record{}
	if err := a.db.WithContext(rctx).Order("id ASC").Find(&records).Error; err != nil {
		a.l.Error("failed to get record list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Error retrieving data")
	}

	return c.JSON(http.StatusOK, &DataResponse{
		Message: "Data retrieved successfully!",
		Data:    records,
	})
}

func (a *App) DataGet(c echo.Context, id string) error {
	rctx := c.Request().Context()

	// 先查缓存
	if record, ok := a.getCachedRecord(rctx, id); ok {
		return c.JSON(http.StatusOK, &DataResponse{
			Message: "Data retrieved successfully!",
			Data:    record,
		})
	}

	// 从数据库中获得指定的记录
	var record models.Record
	if err := a.db.WithContext(rctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound, "Data not found")
		} else {
			a.l.Error("failed to get record", zap.String("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError, "Error retrieving data")
		}
	}

	a.setCachedRecord(rctx, &record)

	return c.JSON(http.StatusOK, &DataResponse{
		Message: "Data retrieved successfully!",
		Data:    &record,
	})
}

func (a *App) DataCreate(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体，数字与字符串按字段类型转换
	var req oapi.DataCreateJSONRequestBody
	if err := c.Bind(&req); err != nil {
		a.l.Debug("failed to bind record", zap.Error(err))
		return a.er(c, http.StatusBadRequest, messageInvalidBody)
	}
	if err := c.Validate(&req); err != nil {
		// 主键由调用方提供
		return a.er(c, http.StatusBadRequest, messageInvalidBody)
	}

	var record models.Record
	a.recordMapFields(&req, &record)

	// 创建记录，重复的 ID 也归为服务端错误
	if err := a.db.WithContext(rctx).Create(&record).Error; err != nil {
		a.l.Error("failed to create record", zap.String("id", record.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Error creating data")
	}

	return c.JSON(http.StatusCreated, &DataResponse{
		Message: "Data created successfully!",
		Data:    &record,
	})
}

func (a *App) DataUpdate(c echo.Context, id string) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req oapi.DataUpdateJSONRequestBody
	if err := c.Bind(&req); err != nil {
		a.l.Debug("failed to bind record update", zap.Error(err))
		return a.er(c, http.StatusBadRequest, messageInvalidBody)
	}

	// 更新记录
	if cols := a.recordUpdateColumns(&req); len(cols) > 0 {
		if err := a.db.WithContext(rctx).Model(&models.Record{}).Where("id = ?", id).Updates(cols).Error; err != nil {
			a.l.Error("failed to update record", zap.String("id", id), zap.Any("columns", cols), zap.Error(err))
			return a.er(c, http.StatusInternalServerError, "Error updating data")
		}
	}

	a.dropCachedRecord(rctx, id)

	// 读回更新后的记录，不存在时 data 为 null
	var record models.Record
	if err := a.db.WithContext(rctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(a.mutationStatus(), &DataResponse{
				Message: "Data updated successfully!",
				Data:    nil,
			})
		}
		a.l.Error("failed to get updated record", zap.String("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Error updating data")
	}

	return c.JSON(a.mutationStatus(), &DataResponse{
		Message: "Data updated successfully!",
		Data:    &record,
	})
}

func (a *App) DataDelete(c echo.Context, id string) error {
	rctx := c.Request().Context()

	// 删除记录，记录不存在也视为成功
	if err := a.db.WithContext(rctx).Delete(&models.Record{}, "id = ?", id).Error; err != nil {
		a.l.Error("failed to delete record", zap.String("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Error deleting data")
	}

	a.dropCachedRecord(rctx, id)

	return c.JSON(a.mutationStatus(), &oapi.Message{
		Message: "Data deleted successfully!",
	})
}
