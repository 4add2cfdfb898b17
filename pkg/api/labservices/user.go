package labservices

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"time"

	"github.com/Azure/azps-go/pkg/util/jsonmodel"
)

// User is a lab user.  ID, Name and Type are populated by the service.
type User struct {
	ID         *string
	Name       *string
	Type       *string
	Properties *UserProperties
}

// UserProperties holds the settings of a lab user.
type UserProperties struct {
	// Email may only be set when the user is created.
	Email                *string
	AdditionalUsageQuota *time.Duration

	DisplayName       *string
	ProvisioningState *ProvisioningState
	RegistrationState *RegistrationState
	InvitationState   *InvitationState
	InvitationSent    *time.Time
	TotalUsage        *time.Duration
}

var userCodec = jsonmodel.NewCodec(decodeUser, encodeUser)

var userPropertiesCodec = jsonmodel.NewCodec(decodeUserProperties, encodeUserProperties)

func UserCodec(hooks jsonmodel.Hooks[User]) *jsonmodel.Codec[User] {
	return userCodec.WithHooks(hooks)
}

func UserPropertiesCodec(hooks jsonmodel.Hooks[UserProperties]) *jsonmodel.Codec[UserProperties] {
	return userPropertiesCodec.WithHooks(hooks)
}

func UserFromJSON(node []byte) *User {
	return userCodec.FromJSON(node)
}

func decodeUser(o jsonmodel.Object, u *User) {
	if v, ok := o.String("id"); ok {
		u.ID = &v
	}
	if v, ok := o.String("name"); ok {
		u.Name = &v
	}
	if v, ok := o.String("type"); ok {
		u.Type = &v
	}
	if v, ok := o.Object("properties"); ok {
		u.Properties = userPropertiesCodec.FromObject(v)
	}
}

func encodeUser(u *User, o jsonmodel.Object, mode jsonmodel.Mode) {
	if mode.Has(jsonmodel.IncludeRead) {
		o.SetString("id", u.ID)
		o.SetString("name", u.Name)
		o.SetString("type", u.Type)
	}
	if u.Properties != nil {
		o.SetObject("properties", u.Properties.ToJSON(nil, mode))
	}
}

func decodeUserProperties(o jsonmodel.Object, p *UserProperties) {
	if v, ok := o.String("email"); ok {
		p.Email = &v
	}
	if v, ok := o.Duration("additionalUsageQuota"); ok {
		p.AdditionalUsageQuota = &v
	}
	if v, ok := o.String("displayName"); ok {
		p.DisplayName = &v
	}
	if v := jsonmodel.EnumPtr(o, "provisioningState", PossibleProvisioningStateValues()); v != nil {
		p.ProvisioningState = v
	}
	if v := jsonmodel.EnumPtr(o, "registrationState", PossibleRegistrationStateValues()); v != nil {
		p.RegistrationState = v
	}
	if v := jsonmodel.EnumPtr(o, "invitationState", PossibleInvitationStateValues()); v != nil {
		p.InvitationState = v
	}
	if v, ok := o.Time("invitationSent"); ok {
		p.InvitationSent = &v
	}
	if v, ok := o.Duration("totalUsage"); ok {
		p.TotalUsage = &v
	}
}

func encodeUserProperties(p *UserProperties, o jsonmodel.Object, mode jsonmodel.Mode) {
	if mode.Has(jsonmodel.IncludeCreate) || mode.Has(jsonmodel.IncludeRead) {
		o.SetString("email", p.Email)
	}
	o.SetDuration("additionalUsageQuota", p.AdditionalUsageQuota)
	if mode.Has(jsonmodel.IncludeRead) {
		o.SetString("displayName", p.DisplayName)
		jsonmodel.SetEnum(o, "provisioningState", p.ProvisioningState)
		jsonmodel.SetEnum(o, "registrationState", p.RegistrationState)
		jsonmodel.SetEnum(o, "invitationState", p.InvitationState)
		o.SetTime("invitationSent", p.InvitationSent)
		o.SetDuration("totalUsage", p.TotalUsage)
	}
}

func (u *User) ToJSON(container jsonmodel.Object, mode jsonmodel.Mode) jsonmodel.Object {
	return userCodec.ToJSON(u, container, mode)
}

func (u User) MarshalJSON() ([]byte, error) {
	return jsonmodel.Marshal(&u, jsonmodel.IncludeAll)
}

func (u *User) UnmarshalJSON(b []byte) error {
	return userCodec.Unmarshal(b, u)
}

func (p *UserProperties) ToJSON(container jsonmodel.Object, mode jsonmodel.Mode) jsonmodel.Object {
	return userPropertiesCodec.ToJSON(p, container, mode)
}

func (p UserProperties) MarshalJSON() ([]byte, error) {
	return jsonmodel.Marshal(&p, jsonmodel.IncludeAll)
}

func (p *UserProperties) UnmarshalJSON(b []byte) error {
	return userPropertiesCodec.Unmarshal(b, p)
}

// GetEmail returns the email address of u, or nil.
func (u *User) GetEmail() *string {
	if u.Properties == nil {
		return nil
	}
	return u.Properties.Email
}

// GetAdditionalUsageQuota returns the quota granted to u on top of the lab
// quota, or nil.
func (u *User) GetAdditionalUsageQuota() *time.Duration {
	if u.Properties == nil {
		return nil
	}
	return u.Properties.AdditionalUsageQuota
}

func (u *User) GetProvisioningState() *ProvisioningState {
	if u.Properties == nil {
		return nil
	}
	return u.Properties.ProvisioningState
}

// UserUpdate is the body of a PATCH on a lab user.
type UserUpdate struct {
	Properties *UserUpdateProperties
}

type UserUpdateProperties struct {
	AdditionalUsageQuota *time.Duration
}

var userUpdateCodec = jsonmodel.NewCodec(decodeUserUpdate, encodeUserUpdate)

var userUpdatePropertiesCodec = jsonmodel.NewCodec(decodeUserUpdateProperties, encodeUserUpdateProperties)

func UserUpdateCodec(hooks jsonmodel.Hooks[UserUpdate]) *jsonmodel.Codec[UserUpdate] {
	return userUpdateCodec.WithHooks(hooks)
}

func UserUpdatePropertiesCodec(hooks jsonmodel.Hooks[UserUpdateProperties]) *jsonmodel.Codec[UserUpdateProperties] {
	return userUpdatePropertiesCodec.WithHooks(hooks)
}

func UserUpdateFromJSON(node []byte) *UserUpdate {
	return userUpdateCodec.FromJSON(node)
}

func decodeUserUpdate(o jsonmodel.Object, u *UserUpdate) {
	if v, ok := o.Object("properties"); ok {
		u.Properties = userUpdatePropertiesCodec.FromObject(v)
	}
}

func encodeUserUpdate(u *UserUpdate, o jsonmodel.Object, mode jsonmodel.Mode) {
	if u.Properties != nil {
		o.SetObject("properties", u.Properties.ToJSON(nil, mode))
	}
}

func decodeUserUpdateProperties(o jsonmodel.Object, p *UserUpdateProperties) {
	if v, ok := o.Duration("additionalUsageQuota"); ok {
		p.AdditionalUsageQuota = &v
	}
}

func encodeUserUpdateProperties(p *UserUpdateProperties, o jsonmodel.Object, mode jsonmodel.Mode) {
	o.SetDuration("additionalUsageQuota", p.AdditionalUsageQuota)
}

// AdditionalUsageQuota returns the quota carried by u, or nil.
func (u *UserUpdate) AdditionalUsageQuota() *time.Duration {
	if u.Properties == nil {
		return nil
	}
	return u.Properties.AdditionalUsageQuota
}

// SetAdditionalUsageQuota sets the quota, creating Properties on first
// write.
func (u *UserUpdate) SetAdditionalUsageQuota(d *time.Duration) {
	if u.Properties == nil {
		u.Properties = &UserUpdateProperties{}
	}
	u.Properties.AdditionalUsageQuota = d
}

func (u *UserUpdate) ToJSON(container jsonmodel.Object, mode jsonmodel.Mode) jsonmodel.Object {
	return userUpdateCodec.ToJSON(u, container, mode)
}

func (u UserUpdate) MarshalJSON() ([]byte, error) {
	return jsonmodel.Marshal(&u, jsonmodel.IncludeAll)
}

func (u *UserUpdate) UnmarshalJSON(b []byte) error {
	return userUpdateCodec.Unmarshal(b, u)
}

func (p *UserUpdateProperties) ToJSON(container jsonmodel.Object, mode jsonmodel.Mode) jsonmodel.Object {
	return userUpdatePropertiesCodec.ToJSON(p, container, mode)
}

// PagedUsers is one page of a user listing.
type PagedUsers struct {
	Value    []*User
	NextLink *string
}

var pagedUsersCodec = jsonmodel.NewCodec(decodePagedUsers, encodePagedUsers)

func PagedUsersFromJSON(node []byte) *PagedUsers {
	return pagedUsersCodec.FromJSON(node)
}

func decodePagedUsers(o jsonmodel.Object, p *PagedUsers) {
	if v, ok := userCodec.FromArray(o, "value"); ok {
		p.Value = v
	}
	if v, ok := o.String("nextLink"); ok {
		p.NextLink = &v
	}
}

func encodePagedUsers(p *PagedUsers, o jsonmodel.Object, mode jsonmodel.Mode) {
	o.SetArray("value", jsonmodel.ToArray(p.Value, mode))
	o.SetString("nextLink", p.NextLink)
}

func (p *PagedUsers) ToJSON(container jsonmodel.Object, mode jsonmodel.Mode) jsonmodel.Object {
	return pagedUsersCodec.ToJSON(p, container, mode)
}

func (p PagedUsers) MarshalJSON() ([]byte, error) {
	return jsonmodel.Marshal(&p, jsonmodel.IncludeAll)
}

func (p *PagedUsers) UnmarshalJSON(b []byte) error {
	return pagedUsersCodec.Unmarshal(b, p)
}

// InviteBody is the body of an invitation request.
type InviteBody struct {
	Text *string
}

var inviteBodyCodec = jsonmodel.NewCodec(
	func(o jsonmodel.Object, b *InviteBody) {
		if v, ok := o.String("text"); ok {
			b.Text = &v
		}
	},
	func(b *InviteBody, o jsonmodel.Object, mode jsonmodel.Mode) {
		o.SetString("text", b.Text)
	},
)

func InviteBodyFromJSON(node []byte) *InviteBody {
	return inviteBodyCodec.FromJSON(node)
}

func (b *InviteBody) ToJSON(container jsonmodel.Object, mode jsonmodel.Mode) jsonmodel.Object {
	return inviteBodyCodec.ToJSON(b, container, mode)
}

func (b InviteBody) MarshalJSON() ([]byte, error) {
	return jsonmodel.Marshal(&b, jsonmodel.IncludeAll)
}

func (b *InviteBody) UnmarshalJSON(data []byte) error {
	return inviteBodyCodec.Unmarshal(data, b)
}
