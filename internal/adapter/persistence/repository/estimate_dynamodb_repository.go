package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"ev_warranty/internal/domain/entities"
	"ev_warranty/internal/domain/failures"
	"ev_warranty/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultEstimatesTableName = "estimate_versions"
	estimateIDIndex           = "id-index"
	maxVersionAttempts        = 3
)

type lineItemRecord struct {
	PartID    string `dynamodbav:"part_id"`
	PartName  string `dynamodbav:"part_name,omitempty"`
	Quantity  int    `dynamodbav:"quantity"`
	UnitPrice int64  `dynamodbav:"unit_price"`
}

type estimateVersionItem struct {
	ID         string           `dynamodbav:"id"`
	ClaimID    string           `dynamodbav:"claim_id"`
	VersionNo  int              `dynamodbav:"version_no"`
	Items      []lineItemRecord `dynamodbav:"items"`
	LaborHours string           `dynamodbav:"labor_hours"`
	LaborRate  int64            `dynamodbav:"labor_rate"`
	Note       string           `dynamodbav:"note"`
	CreatedAt  string           `dynamodbav:"created_at"`
	UpdatedAt  string           `dynamodbav:"updated_at"`
}

// EstimateVersionDynamoRepository is a self-hosted estimate authority backed by
// DynamoDB. It assigns version numbers and enforces the claim status rule the
// remote authority would otherwise enforce.
//
// Table requirements:
//   - PK: claim_id (string), SK: version_no (number)
//   - GSI "id-index": PK id (string)
//
// Totals are not stored; they are recomputed from the items on every read.
type EstimateVersionDynamoRepository struct {
	ddb       dynamoAPI
	claims    interfaces.IClaimSource
	tableName string
	now       func() time.Time
	newID     func() string
}

var _ interfaces.IEstimateAuthority = (*EstimateVersionDynamoRepository)(nil)

func NewEstimateVersionDynamoRepository(ddb dynamoAPI, claims interfaces.IClaimSource) *EstimateVersionDynamoRepository {
	return &EstimateVersionDynamoRepository{
		ddb:       ddb,
		claims:    claims,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

func (r *EstimateVersionDynamoRepository) TableName() string { return r.tableName }

func (r *EstimateVersionDynamoRepository) Create(ctx context.Context, draft entities.EstimateDraft) (entities.EstimateVersion, error) {
	if err := r.requireEstimating(ctx, draft.ClaimID); err != nil {
		return entities.EstimateVersion{}, err
	}

	now := r.now().UTC()
	v := entities.EstimateVersion{
		ID:         r.newID(),
		ClaimID:    draft.ClaimID,
		Items:      draft.Items,
		LaborHours: draft.LaborHours,
		LaborRate:  draft.LaborRate,
		Note:       draft.Note,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// Two writers may read the same max version. The conditional put lets only
	// one of them claim a number; the other re-reads and tries the next one.
	for attempt := 0; attempt < maxVersionAttempts; attempt++ {
		last, err := r.maxVersionNo(ctx, draft.ClaimID)
		if err != nil {
			return entities.EstimateVersion{}, err
		}
		v.VersionNo = last + 1

		av, err := attributevalue.MarshalMap(toEstimateVersionItem(v))
		if err != nil {
			return entities.EstimateVersion{}, err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#version_no)"),
			ExpressionAttributeNames: map[string]string{
				"#version_no": "version_no",
			},
		})
		if err == nil {
			return v.WithTotals(), nil
		}
		if !isConditionalCheckFailed(err) {
			return entities.EstimateVersion{}, storeError("put estimate version", err)
		}
	}
	return entities.EstimateVersion{}, &failures.StateError{
		Message: fmt.Sprintf("could not allocate a version number for claim %s, retry the submission", draft.ClaimID),
	}
}

// Update rewrites the mutable fields of a version in place. The version number
// and creation time never change. Returns a zero version when versionID is unknown.
func (r *EstimateVersionDynamoRepository) Update(ctx context.Context, versionID string, draft entities.EstimateDraft) (entities.EstimateVersion, error) {
	current, err := r.getByID(ctx, versionID)
	if err != nil {
		return entities.EstimateVersion{}, err
	}
	if current.ID == "" {
		return entities.EstimateVersion{}, nil
	}
	if draft.ClaimID != "" && draft.ClaimID != current.ClaimID {
		return entities.EstimateVersion{}, failures.Validation("claim_id", "does not match the estimate's claim")
	}
	if err := r.requireEstimating(ctx, current.ClaimID); err != nil {
		return entities.EstimateVersion{}, err
	}

	items, err := attributevalue.Marshal(toLineItemRecords(draft.Items))
	if err != nil {
		return entities.EstimateVersion{}, err
	}
	return r.update(ctx, current.ClaimID, current.VersionNo, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #items = :items, #labor_hours = :labor_hours, #labor_rate = :labor_rate, #note = :note, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":items":       items,
			":labor_hours": &types.AttributeValueMemberS{Value: draft.LaborHours.String()},
			":labor_rate":  &types.AttributeValueMemberN{Value: strconv.FormatInt(int64(draft.LaborRate), 10)},
			":note":        &types.AttributeValueMemberS{Value: draft.Note},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#items":       "items",
			"#labor_hours": "labor_hours",
			"#labor_rate":  "labor_rate",
			"#note":        "note",
			"#updated_at":  "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EstimateVersionDynamoRepository) ListByClaim(ctx context.Context, claimID string) ([]entities.EstimateVersion, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#claim_id = :claim_id"),
		ExpressionAttributeNames: map[string]string{
			"#claim_id": "claim_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":claim_id": &types.AttributeValueMemberS{Value: claimID},
		},
	})

	out := make([]entities.EstimateVersion, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, storeError("list estimate versions", err)
		}
		var items []estimateVersionItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromEstimateVersionItem(it))
		}
	}
	return out, nil
}

func (r *EstimateVersionDynamoRepository) GetVersion(ctx context.Context, claimID string, versionNo int) (entities.EstimateVersion, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            versionKey(claimID, versionNo),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EstimateVersion{}, storeError("get estimate version", err)
	}
	if len(out.Item) == 0 {
		return entities.EstimateVersion{}, nil
	}

	var it estimateVersionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EstimateVersion{}, err
	}
	return fromEstimateVersionItem(it), nil
}

func (r *EstimateVersionDynamoRepository) requireEstimating(ctx context.Context, claimID string) error {
	claim, err := r.claims.GetClaim(ctx, claimID)
	if err != nil {
		return err
	}
	if claim.ID == "" {
		return fmt.Errorf("claim %s %w", claimID, failures.ErrNotFound)
	}
	if claim.Status != entities.ClaimStatusEstimating {
		return &failures.StateError{
			Message: fmt.Sprintf("Claim %s is in %s status; estimates can only change while it is %s",
				claimID, claim.Status, entities.ClaimStatusEstimating),
		}
	}
	return nil
}

func (r *EstimateVersionDynamoRepository) maxVersionNo(ctx context.Context, claimID string) (int, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#claim_id = :claim_id"),
		ProjectionExpression:   aws.String("#version_no"),
		ExpressionAttributeNames: map[string]string{
			"#claim_id":   "claim_id",
			"#version_no": "version_no",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":claim_id": &types.AttributeValueMemberS{Value: claimID},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
		ConsistentRead:   aws.Bool(true),
	})
	if err != nil {
		return 0, storeError("query latest version", err)
	}
	if len(out.Items) == 0 {
		return 0, nil
	}
	var it struct {
		VersionNo int `dynamodbav:"version_no"`
	}
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return 0, err
	}
	return it.VersionNo, nil
}

func (r *EstimateVersionDynamoRepository) getByID(ctx context.Context, id string) (entities.EstimateVersion, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(estimateIDIndex),
		KeyConditionExpression: aws.String("#id = :id"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.EstimateVersion{}, storeError("query estimate by id", err)
	}
	if len(out.Items) == 0 {
		return entities.EstimateVersion{}, nil
	}
	var it estimateVersionItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.EstimateVersion{}, err
	}
	return fromEstimateVersionItem(it), nil
}

func (r *EstimateVersionDynamoRepository) update(
	ctx context.Context,
	claimID string,
	versionNo int,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.EstimateVersion, error) {
	now := r.now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       versionKey(claimID, versionNo),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.EstimateVersion{}, nil
		}
		return entities.EstimateVersion{}, storeError("update estimate version", err)
	}
	if len(out.Attributes) == 0 {
		return entities.EstimateVersion{}, nil
	}
	var it estimateVersionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.EstimateVersion{}, err
	}
	return fromEstimateVersionItem(it), nil
}

func versionKey(claimID string, versionNo int) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"claim_id":   &types.AttributeValueMemberS{Value: claimID},
		"version_no": &types.AttributeValueMemberN{Value: strconv.Itoa(versionNo)},
	}
}

func toLineItemRecords(items []entities.EstimateLineItem) []lineItemRecord {
	out := make([]lineItemRecord, 0, len(items))
	for _, it := range items {
		out = append(out, lineItemRecord{
			PartID:    it.PartID,
			PartName:  it.PartName,
			Quantity:  it.Quantity,
			UnitPrice: int64(it.UnitPrice),
		})
	}
	return out
}

func toEstimateVersionItem(v entities.EstimateVersion) estimateVersionItem {
	return estimateVersionItem{
		ID:         v.ID,
		ClaimID:    v.ClaimID,
		VersionNo:  v.VersionNo,
		Items:      toLineItemRecords(v.Items),
		LaborHours: v.LaborHours.String(),
		LaborRate:  int64(v.LaborRate),
		Note:       v.Note,
		CreatedAt:  formatTime(v.CreatedAt),
		UpdatedAt:  formatTime(v.UpdatedAt),
	}
}

func fromEstimateVersionItem(it estimateVersionItem) entities.EstimateVersion {
	hours, _ := decimal.NewFromString(it.LaborHours)
	items := make([]entities.EstimateLineItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.EstimateLineItem{
			PartID:    li.PartID,
			PartName:  li.PartName,
			Quantity:  li.Quantity,
			UnitPrice: entities.Money(li.UnitPrice),
		})
	}
	v := entities.EstimateVersion{
		ID:         it.ID,
		ClaimID:    it.ClaimID,
		VersionNo:  it.VersionNo,
		Items:      items,
		LaborHours: hours,
		LaborRate:  entities.Money(it.LaborRate),
		Note:       it.Note,
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
	return v.WithTotals()
}
