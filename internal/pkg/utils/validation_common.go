package utils

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ValidateUrlParamID(param string) error {
	if param == "" {
		return errors.New("parameter is missing from url path")
	}
	if !primitive.IsValidObjectID(param) {
		return errors.New("parameter is not a valid object id")
	}
	return nil
}
