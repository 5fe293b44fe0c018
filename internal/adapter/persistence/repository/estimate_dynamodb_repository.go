package repository

import (
	"construction_estimator/internal/domain/entities"
	"construction_estimator/internal/usecase/interfaces"
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimatesTableName = "estimates"
	estimatesUserIDIndex      = "user_id-index"

	// createdAtLayout is fixed width so the GSI sort key orders chronologically.
	createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

type estimateItem struct {
	ID     string `dynamodbav:"id"`
	UserID int64  `dynamodbav:"user_id"`

	ProjectName      string  `dynamodbav:"project_name"`
	TotalArea        float64 `dynamodbav:"total_area"`
	Location         string  `dynamodbav:"location"`
	MaterialQuality  string  `dynamodbav:"material_quality"`
	NumFloors        int     `dynamodbav:"num_floors"`
	NumRooms         int     `dynamodbav:"num_rooms"`
	CeilingHeight    string  `dynamodbav:"ceiling_height"`
	IncludesFinishes bool    `dynamodbav:"includes_finishes"`
	FinishesQuality  string  `dynamodbav:"finishes_quality"`

	MaterialCost          int64              `dynamodbav:"material_cost"`
	LaborCost             int64              `dynamodbav:"labor_cost"`
	EquipmentCost         int64              `dynamodbav:"equipment_cost"`
	FinishesCost          int64              `dynamodbav:"finishes_cost"`
	OtherCosts            int64              `dynamodbav:"other_costs"`
	TotalCost             int64              `dynamodbav:"total_cost"`
	EstimatedDurationDays int64              `dynamodbav:"estimated_duration_days"`
	MaterialBOQ           []entities.BOQLine `dynamodbav:"material_boq"`

	CreatedAt string `dynamodbav:"created_at"`
}

// EstimateDynamoRepository persists the estimate log in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id number, SK: created_at string)
type EstimateDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb DynamoAPI, tableName string) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.EstimateRecord) (entities.EstimateRecord, error) {
	ok, err := putItem(ctx, r.ddb, r.tableName, toEstimateItem(e), "attribute_not_exists(#id)")
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	if !ok {
		return entities.EstimateRecord{}, ErrDuplicateID
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.EstimateRecord, error) {
	it, ok, err := getItem[estimateItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !ok {
		return entities.EstimateRecord{}, err
	}
	return fromEstimateItem(it), nil
}

// ListByUserID reads the user's whole history from the GSI and pages it in
// memory; DynamoDB has no offset pagination.
func (r *EstimateDynamoRepository) ListByUserID(ctx context.Context, userID int64, page entities.PageRequest) (entities.EstimatePage, error) {
	items, err := queryAll[estimateItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(estimatesUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberN{Value: strconv.FormatInt(userID, 10)},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return entities.EstimatePage{}, err
	}
	return entities.SlicePage(newestFirst(items), page), nil
}

func (r *EstimateDynamoRepository) List(ctx context.Context, page entities.PageRequest) (entities.EstimatePage, error) {
	items, err := scanAll[estimateItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return entities.EstimatePage{}, err
	}
	return entities.SlicePage(newestFirst(items), page), nil
}

func (r *EstimateDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteItem(ctx, r.ddb, r.tableName, id)
}

func (r *EstimateDynamoRepository) Stats(ctx context.Context) (entities.EstimateStats, error) {
	items, err := scanAll[estimateItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:            aws.String(r.tableName),
		ProjectionExpression: aws.String("user_id, total_cost"),
	})
	if err != nil {
		return entities.EstimateStats{}, err
	}

	users := make(map[int64]struct{})
	var stats entities.EstimateStats
	for _, it := range items {
		stats.TotalEstimates++
		stats.TotalCostSum += it.TotalCost
		users[it.UserID] = struct{}{}
	}
	stats.ActiveUsers = len(users)
	return stats, nil
}

func newestFirst(items []estimateItem) []entities.EstimateRecord {
	out := make([]entities.EstimateRecord, 0, len(items))
	for _, it := range items {
		out = append(out, fromEstimateItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func toEstimateItem(e entities.EstimateRecord) estimateItem {
	boq := e.BillOfQuantities
	if boq == nil {
		boq = []entities.BOQLine{}
	}
	return estimateItem{
		ID:                    e.ID,
		UserID:                e.UserID,
		ProjectName:           e.Spec.ProjectName,
		TotalArea:             e.Spec.Area,
		Location:              e.Spec.Location,
		MaterialQuality:       string(e.Spec.QualityTier),
		NumFloors:             e.Spec.Floors,
		NumRooms:              e.Spec.Rooms,
		CeilingHeight:         string(e.Spec.CeilingHeight),
		IncludesFinishes:      e.Spec.IncludesFinishes,
		FinishesQuality:       string(e.Spec.FinishesQuality),
		MaterialCost:          e.MaterialCost,
		LaborCost:             e.LaborCost,
		EquipmentCost:         e.EquipmentCost,
		FinishesCost:          e.FinishesCost,
		OtherCosts:            e.OtherCosts,
		TotalCost:             e.TotalCost,
		EstimatedDurationDays: e.EstimatedDurationDays,
		MaterialBOQ:           boq,
		CreatedAt:             e.CreatedAt.UTC().Format(createdAtLayout),
	}
}

func fromEstimateItem(it estimateItem) entities.EstimateRecord {
	createdAt, _ := time.Parse(createdAtLayout, it.CreatedAt)
	return entities.EstimateRecord{
		ID:     it.ID,
		UserID: it.UserID,
		Spec: entities.ProjectSpec{
			ProjectName:      it.ProjectName,
			Area:             it.TotalArea,
			Location:         it.Location,
			QualityTier:      entities.QualityTier(it.MaterialQuality),
			Floors:           it.NumFloors,
			Rooms:            it.NumRooms,
			CeilingHeight:    entities.CeilingHeightBand(it.CeilingHeight),
			IncludesFinishes: it.IncludesFinishes,
			FinishesQuality:  entities.QualityTier(it.FinishesQuality),
		},
		MaterialCost:          it.MaterialCost,
		LaborCost:             it.LaborCost,
		EquipmentCost:         it.EquipmentCost,
		FinishesCost:          it.FinishesCost,
		OtherCosts:            it.OtherCosts,
		TotalCost:             it.TotalCost,
		EstimatedDurationDays: it.EstimatedDurationDays,
		BillOfQuantities:      it.MaterialBOQ,
		CreatedAt:             createdAt.UTC(),
	}
}
