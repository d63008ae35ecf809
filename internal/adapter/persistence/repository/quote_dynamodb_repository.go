package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"atelier_crm/internal/domain/entities"
	"atelier_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	projectIDIndexName     = "project_id-index"
)

type quoteItem struct {
	ID             string `dynamodbav:"id"`
	ProjectID      string `dynamodbav:"project_id"`
	Amount         string `dynamodbav:"amount"`
	Status         string `dynamodbav:"status"`
	InvoiceSettled bool   `dynamodbav:"invoice_settled"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI project_id-index on project_id
//
// Status writes carry the expected current status as a condition so a quote
// is decided exactly once even with two editors racing.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Quote, error) {
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

	quotes := make([]entities.Quote, 0, len(out.Items))
	for _, item := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		quotes = append(quotes, fromQuoteItem(it))
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status, expected entities.QuoteStatus) (entities.Quote, error) {
	return r.update(ctx, id,
		"SET #status = :status, #updated_at = :updated_at",
		"attribute_exists(#id) AND #status = :expected",
		func(now string) map[string]types.AttributeValue {
			return map[string]types.AttributeValue{
				":status":     &types.AttributeValueMemberS{Value: string(status)},
				":expected":   &types.AttributeValueMemberS{Value: string(expected)},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			}
		},
		map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		})
}

func (r *QuoteDynamoRepository) SettleInvoiceByID(ctx context.Context, id string) (entities.Quote, error) {
	return r.update(ctx, id,
		"SET #invoice_settled = :settled, #updated_at = :updated_at",
		"attribute_exists(#id) AND #status = :accepted AND #invoice_settled = :unsettled",
		func(now string) map[string]types.AttributeValue {
			return map[string]types.AttributeValue{
				":settled":    &types.AttributeValueMemberBOOL{Value: true},
				":unsettled":  &types.AttributeValueMemberBOOL{Value: false},
				":accepted":   &types.AttributeValueMemberS{Value: string(entities.QuoteStatusAccepted)},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			}
		},
		map[string]string{
			"#status":          "status",
			"#invoice_settled": "invoice_settled",
			"#updated_at":      "updated_at",
		})
}

func (r *QuoteDynamoRepository) update(
	ctx context.Context,
	id string,
	updateExpr string,
	conditionExpr string,
	values func(now string) map[string]types.AttributeValue,
	names map[string]string,
) (entities.Quote, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(conditionExpr),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values(now),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:             q.ID,
		ProjectID:      q.ProjectID,
		Amount:         floatToString(q.Amount),
		Status:         string(q.Status),
		InvoiceSettled: q.InvoiceSettled,
		CreatedAt:      q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.Quote{
		ID:             it.ID,
		ProjectID:      it.ProjectID,
		Amount:         amount,
		Status:         entities.QuoteStatus(it.Status),
		InvoiceSettled: it.InvoiceSettled,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
