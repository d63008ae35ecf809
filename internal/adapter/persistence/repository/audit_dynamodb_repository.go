package repository

import (
	"context"
	"sort"
	"time"

	"atelier_crm/internal/domain/entities"
	"atelier_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAuditEntriesTableName = "audit_entries"

type auditEntryItem struct {
	ID          string `dynamodbav:"id"`
	ProjectID   string `dynamodbav:"project_id"`
	FromStatus  string `dynamodbav:"from_status"`
	ToStatus    string `dynamodbav:"to_status"`
	Actor       string `dynamodbav:"actor"`
	Description string `dynamodbav:"description"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// AuditDynamoRepository persists the append-only project timeline.
//
// Table requirements:
//   - PK: id (string)
//   - GSI project_id-index on project_id
//
// There is no update or delete path here on purpose.

type AuditDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditRepository = (*AuditDynamoRepository)(nil)

func NewAuditDynamoRepository(ddb *dynamodb.Client) *AuditDynamoRepository {
	return &AuditDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AUDIT_ENTRIES_TABLE", defaultAuditEntriesTableName),
	}
}

func (r *AuditDynamoRepository) Append(ctx context.Context, e entities.AuditEntry) (entities.AuditEntry, error) {
	av, err := attributevalue.MarshalMap(toAuditEntryItem(e))
	if err != nil {
		return entities.AuditEntry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.AuditEntry{}, err
	}
	return e, nil
}

func (r *AuditDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.AuditEntry, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(projectIDIndexName),
		KeyConditionExpression: aws.String("#project_id = :project_id"),
		ExpressionAttributeNames: map[string]string{
			"#project_id": "project_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":project_id": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	entries := make([]entities.AuditEntry, 0, len(out.Items))
	for _, item := range out.Items {
		var it auditEntryItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		entries = append(entries, fromAuditEntryItem(it))
	}

	// The GSI has no range key; the timeline view wants chronological order.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
	return entries, nil
}

func toAuditEntryItem(e entities.AuditEntry) auditEntryItem {
	return auditEntryItem{
		ID:          e.ID,
		ProjectID:   e.ProjectID,
		FromStatus:  string(e.FromStatus),
		ToStatus:    string(e.ToStatus),
		Actor:       e.Actor,
		Description: e.Description,
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAuditEntryItem(it auditEntryItem) entities.AuditEntry {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.AuditEntry{
		ID:          it.ID,
		ProjectID:   it.ProjectID,
		FromStatus:  entities.ProjectStatus(it.FromStatus),
		ToStatus:    entities.ProjectStatus(it.ToStatus),
		Actor:       it.Actor,
		Description: it.Description,
		CreatedAt:   createdAt,
	}
}
