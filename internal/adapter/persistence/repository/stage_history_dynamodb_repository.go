package repository

import (
	"context"
	"time"

	"atelier_crm/internal/domain/entities"
	"atelier_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultStageIntervalsTableName = "stage_intervals"

type stageIntervalItem struct {
	ID        string `dynamodbav:"id"`
	ProjectID string `dynamodbav:"project_id"`
	Stage     string `dynamodbav:"stage"`
	StartedAt string `dynamodbav:"started_at"`
	EndedAt   string `dynamodbav:"ended_at,omitempty"`
}

// StageHistoryDynamoRepository persists the stage interval ledger.
//
// Table requirements:
//   - PK: id (string)
//   - GSI project_id-index on project_id
//
// An open interval has no ended_at attribute, so "open" is a plain
// attribute_not_exists filter.

type StageHistoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStageHistoryRepository = (*StageHistoryDynamoRepository)(nil)

func NewStageHistoryDynamoRepository(ddb *dynamodb.Client) *StageHistoryDynamoRepository {
	return &StageHistoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STAGE_INTERVALS_TABLE", defaultStageIntervalsTableName),
	}
}

func (r *StageHistoryDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.StageInterval, error) {
	return r.query(ctx, projectID, false)
}

func (r *StageHistoryDynamoRepository) ListOpenByProjectID(ctx context.Context, projectID string) ([]entities.StageInterval, error) {
	return r.query(ctx, projectID, true)
}

func (r *StageHistoryDynamoRepository) query(ctx context.Context, projectID string, openOnly bool) ([]entities.StageInterval, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(projectIDIndexName),
		KeyConditionExpression: aws.String("#project_id = :project_id"),
		ExpressionAttributeNames: map[string]string{
			"#project_id": "project_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":project_id": &types.AttributeValueMemberS{Value: projectID},
		},
	}
	if openOnly {
		in.FilterExpression = aws.String("attribute_not_exists(#ended_at)")
		in.ExpressionAttributeNames["#ended_at"] = "ended_at"
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	intervals := make([]entities.StageInterval, 0, len(out.Items))
	for _, item := range out.Items {
		var it stageIntervalItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		intervals = append(intervals, fromStageIntervalItem(it))
	}
	return intervals, nil
}

// CloseAndOpen closes every interval in closing and inserts opening, all in
// one TransactWriteItems call. The transaction is what keeps the "at most one
// open interval per project" invariant from racing: either every close and
// the open commit together or none do.
func (r *StageHistoryDynamoRepository) CloseAndOpen(ctx context.Context, closing []entities.StageInterval, opening entities.StageInterval, at time.Time) error {
	endedAt := at.UTC().Format(time.RFC3339Nano)

	items := make([]types.TransactWriteItem, 0, len(closing)+1)
	for _, iv := range closing {
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: iv.ID},
				},
				ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#ended_at)"),
				UpdateExpression:    aws.String("SET #ended_at = :ended_at"),
				ExpressionAttributeNames: map[string]string{
					"#id":       "id",
					"#ended_at": "ended_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":ended_at": &types.AttributeValueMemberS{Value: endedAt},
				},
			},
		})
	}

	av, err := attributevalue.MarshalMap(toStageIntervalItem(opening))
	if err != nil {
		return err
	}
	items = append(items, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	})

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	return err
}

func toStageIntervalItem(iv entities.StageInterval) stageIntervalItem {
	it := stageIntervalItem{
		ID:        iv.ID,
		ProjectID: iv.ProjectID,
		Stage:     string(iv.Stage),
		StartedAt: iv.StartedAt.UTC().Format(time.RFC3339Nano),
	}
	if iv.EndedAt != nil {
		it.EndedAt = iv.EndedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromStageIntervalItem(it stageIntervalItem) entities.StageInterval {
	startedAt, _ := time.Parse(time.RFC3339Nano, it.StartedAt)
	iv := entities.StageInterval{
		ID:        it.ID,
		ProjectID: it.ProjectID,
		Stage:     entities.ProjectStatus(it.Stage),
		StartedAt: startedAt,
	}
	if it.EndedAt != "" {
		endedAt, err := time.Parse(time.RFC3339Nano, it.EndedAt)
		if err == nil {
			iv.EndedAt = &endedAt
		}
	}
	return iv
}
