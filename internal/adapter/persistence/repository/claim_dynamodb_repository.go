package repository

import (
	"context"
	"strings"

	"ev_warranty/internal/domain/entities"
	"ev_warranty/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClaimsTableName = "claims"

type claimItem struct {
	ID     string `dynamodbav:"id"`
	VIN    string `dynamodbav:"vin"`
	Status string `dynamodbav:"status"`
}

// ClaimDynamoRepository reads claims from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ClaimDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IClaimSource = (*ClaimDynamoRepository)(nil)

func NewClaimDynamoRepository(ddb dynamoAPI) *ClaimDynamoRepository {
	return &ClaimDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLAIMS_TABLE", defaultClaimsTableName),
	}
}

func (r *ClaimDynamoRepository) TableName() string { return r.tableName }

func (r *ClaimDynamoRepository) GetClaim(ctx context.Context, claimID string) (entities.Claim, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: claimID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Claim{}, storeError("get claim", err)
	}
	if len(out.Item) == 0 {
		return entities.Claim{}, nil
	}

	var it claimItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Claim{}, err
	}
	return entities.Claim{
		ID:     it.ID,
		VIN:    it.VIN,
		Status: entities.ClaimStatus(strings.ToUpper(it.Status)),
	}, nil
}

// Save upserts a claim. The claim system owns these records; Save exists for
// local seeding.
func (r *ClaimDynamoRepository) Save(ctx context.Context, c entities.Claim) error {
	av, err := attributevalue.MarshalMap(claimItem{ID: c.ID, VIN: c.VIN, Status: string(c.Status)})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return storeError("save claim", err)
	}
	return nil
}
