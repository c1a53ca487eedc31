package mongostore

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"medstore/models"
)

// Update documents built by the Store methods.

func batchFilter(id models.ProductID, batchID models.BatchID) bson.M {
	return bson.M{"_id": id, "batches._id": batchID}
}

func pushBatch(b models.Batch, at time.Time) bson.M {
	return bson.M{
		"$push": bson.M{"batches": b},
		"$set":  bson.M{"updatedAt": at},
	}
}

// setBatchField sets one field of the batch matched by batchFilter.
func setBatchField(field string, value any, at time.Time) bson.M {
	return bson.M{"$set": bson.M{"batches.$." + field: value, "updatedAt": at}}
}

func incBatchStock(delta int, at time.Time) bson.M {
	return bson.M{
		"$inc": bson.M{"batches.$.stock": delta},
		"$set": bson.M{"updatedAt": at},
	}
}

func setProductFlags(orderLater, isOrdered bool, at time.Time) bson.M {
	return bson.M{"$set": bson.M{"orderLater": orderLater, "isOrdered": isOrdered, "updatedAt": at}}
}

// upsertCustomer renames an existing customer and keeps its id, phone and
// creation time; on insert those come from c.
func upsertCustomer(c *models.Customer) bson.M {
	return bson.M{
		"$set": bson.M{"name": c.Name, "updatedAt": c.UpdatedAt},
		"$setOnInsert": bson.M{
			"_id":       c.ID,
			"phone":     c.Phone,
			"createdAt": c.CreatedAt,
		},
	}
}

// transactionSet merges prescription entries one label at a time so earlier
// uploads survive.
func transactionSet(patch models.TransactionPatch, at time.Time) bson.M {
	set := bson.M{"updatedAt": at}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.PaymentMethod != nil {
		set["paymentMethod"] = *patch.PaymentMethod
	}
	for label, value := range patch.Prescription {
		set["prescription."+label] = value
	}
	return set
}

func purchaseSet(patch models.PurchasePatch, at time.Time) bson.M {
	set := bson.M{"updatedAt": at}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.PaymentMethod != nil {
		set["paymentMethod"] = *patch.PaymentMethod
	}
	if patch.InvoiceNumber != nil {
		set["invoiceNumber"] = *patch.InvoiceNumber
	}
	return set
}

func sumTotalsPipeline(typ models.TransactionType, since time.Time) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"type": typ, "createdAt": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$total"}}}},
	}
}
