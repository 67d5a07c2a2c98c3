// Copyright (c) 2026 Daleel Balady. All rights reserved.

package provider

import "context"

type Repository interface {
	GetSubscriptionByProvider(context context.Context, providerID string) (*Subscription, error)
	CreateSubscription(context context.Context, subscription *Subscription) error
	GetApplicationByApplicantAndName(context context.Context, applicantID, businessName string) (*Application, error)
	CreateApplication(context context.Context, application *Application) error
}
