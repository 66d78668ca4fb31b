// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the human-readable messages written into the "message"
// field of successful API responses. Failed responses take their message from
// the error that caused them.
package app

const (
	MsgServiceRunning = "service is running"

	// auth
	MsgRegistered       = "registration successful"
	MsgLoggedIn         = "login successful"
	MsgUserFound        = "user found"
	MsgAccountActivated = "account activated"

	// categories
	MsgCategoryCreated = "category created"
	MsgCategoriesFound = "categories found"
	MsgCategoryFound   = "category found"
	MsgCategoryUpdated = "category updated"
	MsgCategoryDeleted = "category deleted"

	// campaigns
	MsgCampaignCreated = "campaign created"
	MsgCampaignsFound  = "campaigns found"
	MsgCampaignFound   = "campaign found"
	MsgCampaignUpdated = "campaign updated"
	MsgCampaignDeleted = "campaign deleted"

	// media
	MsgFileUploaded  = "file uploaded"
	MsgFilesUploaded = "files uploaded"
	MsgFileRemoved   = "file removed"

	// MsgInternalServerError replaces the message of unexpected failures
	// outside the development environment.
	MsgInternalServerError = "internal server error"
)
