package counter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm/clause"

	"github.com/hazzler78/stromsjef-sub000/app/models"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/cache"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/database"
)

const planClicksKey = "plan:counters:clicks"

// AddPlanClick increments the pending affiliate-click counter for a plan
// in Redis. Clicks sit in the hash until the next flush.
func AddPlanClick(planID string) error {
	ctx := context.Background()
	return cache.GetClient().HIncrBy(ctx, planClicksKey, planID, 1).Err()
}

// FlushAll drains pending click counters into the click_stats table.
// The hash is RENAMEd to a temporary key first so in-flight increments
// are not lost during the drain.
func FlushAll() error {
	ctx := context.Background()
	rdb := cache.GetClient()

	tmpKey := fmt.Sprintf("%s:tmp:%d", planClicksKey, time.Now().UnixNano())
	if err := rdb.Do(ctx, "RENAME", planClicksKey, tmpKey).Err(); err != nil {
		// Nothing to flush when the key does not exist
		if strings.Contains(strings.ToLower(err.Error()), "no such key") || err.Error() == "redis: nil" {
			return nil
		}
		return err
	}
	defer rdb.Del(ctx, tmpKey)

	data, err := rdb.HGetAll(ctx, tmpKey).Result()
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	db := database.GetDB()
	for planID, raw := range data {
		var inc int64
		if _, err := fmt.Sscanf(raw, "%d", &inc); err != nil || inc == 0 {
			continue
		}
		stat := models.ClickStat{PlanID: planID, Clicks: inc}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "plan_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"clicks": gormExprAdd(inc)}),
		}).Create(&stat).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func gormExprAdd(inc int64) clause.Expr {
	return clause.Expr{SQL: "clicks + ?", Vars: []interface{}{inc}}
}
