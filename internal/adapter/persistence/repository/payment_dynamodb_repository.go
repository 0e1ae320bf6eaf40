package repository

import (
	"context"
	"time"

	"payflux/internal/domain/entities"
	"payflux/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	paymentsCreatedAtIndex = "created_at-index"

	// recordTypePayment is the constant partition key of the GSI: all ledger
	// records share it so a single Query returns them ordered by created_at.
	recordTypePayment = "payment"
)

type paymentItem struct {
	ID            string  `dynamodbav:"id"`
	RecordType    string  `dynamodbav:"record_type"`
	Amount        float64 `dynamodbav:"amount"`
	Method        string  `dynamodbav:"method"`
	Recipient     string  `dynamodbav:"recipient"`
	Description   string  `dynamodbav:"description"`
	Gateway       string  `dynamodbav:"gateway"`
	Status        string  `dynamodbav:"status"`
	TransactionID string  `dynamodbav:"transaction_id"`
	CreatedAt     string  `dynamodbav:"created_at"`
}

// PaymentDynamoRepository persists PaymentRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: created_at-index (PK: record_type, SK: created_at)

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client, tableName string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentDynamoRepository) Append(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
	it := toPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentRecord{}, err
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
		return entities.PaymentRecord{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) Recent(ctx context.Context, limit int) ([]entities.PaymentRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsCreatedAtIndex),
		KeyConditionExpression: aws.String("record_type = :rt"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rt": &types.AttributeValueMemberS{Value: recordTypePayment},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.PaymentRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		records = append(records, fromPaymentItem(it))
	}
	return records, nil
}

func toPaymentItem(p entities.PaymentRecord) paymentItem {
	return paymentItem{
		ID:            p.ID,
		RecordType:    recordTypePayment,
		Amount:        p.Amount,
		Method:        p.Method,
		Recipient:     p.Recipient,
		Description:   p.Description,
		Gateway:       string(p.Gateway),
		Status:        string(p.Status),
		TransactionID: p.TransactionID,
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentItem(it paymentItem) entities.PaymentRecord {
	created, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.PaymentRecord{
		ID:            it.ID,
		Amount:        it.Amount,
		Method:        it.Method,
		Recipient:     it.Recipient,
		Description:   it.Description,
		Gateway:       entities.Gateway(it.Gateway),
		Status:        entities.PaymentStatus(it.Status),
		TransactionID: it.TransactionID,
		CreatedAt:     created,
	}
}
