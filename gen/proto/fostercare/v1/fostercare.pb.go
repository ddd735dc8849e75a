// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: fostercare/v1/fostercare.proto

package fostercarev1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Carer struct {
	state                 protoimpl.MessageState `protogen:"open.v1"`
	Id                    string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name                  string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Email                 string                 `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	Phone                 string                 `protobuf:"bytes,4,opt,name=phone,proto3" json:"phone,omitempty"`
	MinAge                int32                  `protobuf:"varint,5,opt,name=min_age,json=minAge,proto3" json:"min_age,omitempty"`
	MaxAge                int32                  `protobuf:"varint,6,opt,name=max_age,json=maxAge,proto3" json:"max_age,omitempty"`
	AcceptsSiblings       bool                   `protobuf:"varint,7,opt,name=accepts_siblings,json=acceptsSiblings,proto3" json:"accepts_siblings,omitempty"`
	AllowsPets            bool                   `protobuf:"varint,8,opt,name=allows_pets,json=allowsPets,proto3" json:"allows_pets,omitempty"`
	BehaviouralExperience bool                   `protobuf:"varint,9,opt,name=behavioural_experience,json=behaviouralExperience,proto3" json:"behavioural_experience,omitempty"`
	SenExperience         bool                   `protobuf:"varint,10,opt,name=sen_experience,json=senExperience,proto3" json:"sen_experience,omitempty"`
	PreferredLocation     string                 `protobuf:"bytes,11,opt,name=preferred_location,json=preferredLocation,proto3" json:"preferred_location,omitempty"`
	ExcludedLocations     []string               `protobuf:"bytes,12,rep,name=excluded_locations,json=excludedLocations,proto3" json:"excluded_locations,omitempty"`
	GenderPreference      string                 `protobuf:"bytes,13,opt,name=gender_preference,json=genderPreference,proto3" json:"gender_preference,omitempty"` // empty = no preference
	Capacity              int32                  `protobuf:"varint,14,opt,name=capacity,proto3" json:"capacity,omitempty"`
	Status                string                 `protobuf:"bytes,15,opt,name=status,proto3" json:"status,omitempty"`
	CreatedAt             string                 `protobuf:"bytes,16,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	UpdatedAt             string                 `protobuf:"bytes,17,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *Carer) Reset() {
	*x = Carer{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Carer) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Carer) ProtoMessage() {}

func (x *Carer) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Carer.ProtoReflect.Descriptor instead.
func (*Carer) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{0}
}

func (x *Carer) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Carer) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Carer) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Carer) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *Carer) GetMinAge() int32 {
	if x != nil {
		return x.MinAge
	}
	return 0
}

func (x *Carer) GetMaxAge() int32 {
	if x != nil {
		return x.MaxAge
	}
	return 0
}

func (x *Carer) GetAcceptsSiblings() bool {
	if x != nil {
		return x.AcceptsSiblings
	}
	return false
}

func (x *Carer) GetAllowsPets() bool {
	if x != nil {
		return x.AllowsPets
	}
	return false
}

func (x *Carer) GetBehaviouralExperience() bool {
	if x != nil {
		return x.BehaviouralExperience
	}
	return false
}

func (x *Carer) GetSenExperience() bool {
	if x != nil {
		return x.SenExperience
	}
	return false
}

func (x *Carer) GetPreferredLocation() string {
	if x != nil {
		return x.PreferredLocation
	}
	return ""
}

func (x *Carer) GetExcludedLocations() []string {
	if x != nil {
		return x.ExcludedLocations
	}
	return nil
}

func (x *Carer) GetGenderPreference() string {
	if x != nil {
		return x.GenderPreference
	}
	return ""
}

func (x *Carer) GetCapacity() int32 {
	if x != nil {
		return x.Capacity
	}
	return 0
}

func (x *Carer) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Carer) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Carer) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Referral struct {
	state                 protoimpl.MessageState `protogen:"open.v1"`
	Id                    string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Age                   int32                  `protobuf:"varint,2,opt,name=age,proto3" json:"age,omitempty"`
	Gender                string                 `protobuf:"bytes,3,opt,name=gender,proto3" json:"gender,omitempty"`
	Ethnicity             string                 `protobuf:"bytes,4,opt,name=ethnicity,proto3" json:"ethnicity,omitempty"`
	CulturalBackground    string                 `protobuf:"bytes,5,opt,name=cultural_background,json=culturalBackground,proto3" json:"cultural_background,omitempty"`
	SenNeeds              bool                   `protobuf:"varint,6,opt,name=sen_needs,json=senNeeds,proto3" json:"sen_needs,omitempty"`
	Disabilities          []string               `protobuf:"bytes,7,rep,name=disabilities,proto3" json:"disabilities,omitempty"`
	BehaviouralNeeds      bool                   `protobuf:"varint,8,opt,name=behavioural_needs,json=behaviouralNeeds,proto3" json:"behavioural_needs,omitempty"`
	BehaviouralDetails    string                 `protobuf:"bytes,9,opt,name=behavioural_details,json=behaviouralDetails,proto3" json:"behavioural_details,omitempty"`
	PlacementType         string                 `protobuf:"bytes,10,opt,name=placement_type,json=placementType,proto3" json:"placement_type,omitempty"`
	SiblingGroup          bool                   `protobuf:"varint,11,opt,name=sibling_group,json=siblingGroup,proto3" json:"sibling_group,omitempty"`
	SiblingCount          int32                  `protobuf:"varint,12,opt,name=sibling_count,json=siblingCount,proto3" json:"sibling_count,omitempty"` // 0 = unknown
	SoloPlacementRequired bool                   `protobuf:"varint,13,opt,name=solo_placement_required,json=soloPlacementRequired,proto3" json:"solo_placement_required,omitempty"`
	PetsAllowed           bool                   `protobuf:"varint,14,opt,name=pets_allowed,json=petsAllowed,proto3" json:"pets_allowed,omitempty"`
	PreferredLocations    []string               `protobuf:"bytes,15,rep,name=preferred_locations,json=preferredLocations,proto3" json:"preferred_locations,omitempty"`
	ExcludedLocations     []string               `protobuf:"bytes,16,rep,name=excluded_locations,json=excludedLocations,proto3" json:"excluded_locations,omitempty"`
	CarerGenderPreference string                 `protobuf:"bytes,17,opt,name=carer_gender_preference,json=carerGenderPreference,proto3" json:"carer_gender_preference,omitempty"` // empty = no preference
	SupportNeeds          []string               `protobuf:"bytes,18,rep,name=support_needs,json=supportNeeds,proto3" json:"support_needs,omitempty"`
	MedicalNeeds          []string               `protobuf:"bytes,19,rep,name=medical_needs,json=medicalNeeds,proto3" json:"medical_needs,omitempty"`
	EducationalNeeds      []string               `protobuf:"bytes,20,rep,name=educational_needs,json=educationalNeeds,proto3" json:"educational_needs,omitempty"`
	Urgency               string                 `protobuf:"bytes,21,opt,name=urgency,proto3" json:"urgency,omitempty"`
	Status                string                 `protobuf:"bytes,22,opt,name=status,proto3" json:"status,omitempty"`
	Source                string                 `protobuf:"bytes,23,opt,name=source,proto3" json:"source,omitempty"`
	ReceivedAt            string                 `protobuf:"bytes,24,opt,name=received_at,json=receivedAt,proto3" json:"received_at,omitempty"` // RFC3339
	MatchedCarers         []*MatchedCarer        `protobuf:"bytes,25,rep,name=matched_carers,json=matchedCarers,proto3" json:"matched_carers,omitempty"`
	AssignedCarerId       string                 `protobuf:"bytes,26,opt,name=assigned_carer_id,json=assignedCarerId,proto3" json:"assigned_carer_id,omitempty"`
	AssignedAt            string                 `protobuf:"bytes,27,opt,name=assigned_at,json=assignedAt,proto3" json:"assigned_at,omitempty"`
	StatusHistory         []*StatusChange        `protobuf:"bytes,28,rep,name=status_history,json=statusHistory,proto3" json:"status_history,omitempty"`
	AttachmentPath        string                 `protobuf:"bytes,29,opt,name=attachment_path,json=attachmentPath,proto3" json:"attachment_path,omitempty"`
	ExtractedData         bool                   `protobuf:"varint,30,opt,name=extracted_data,json=extractedData,proto3" json:"extracted_data,omitempty"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *Referral) Reset() {
	*x = Referral{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Referral) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Referral) ProtoMessage() {}

func (x *Referral) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Referral.ProtoReflect.Descriptor instead.
func (*Referral) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{1}
}

func (x *Referral) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Referral) GetAge() int32 {
	if x != nil {
		return x.Age
	}
	return 0
}

func (x *Referral) GetGender() string {
	if x != nil {
		return x.Gender
	}
	return ""
}

func (x *Referral) GetEthnicity() string {
	if x != nil {
		return x.Ethnicity
	}
	return ""
}

func (x *Referral) GetCulturalBackground() string {
	if x != nil {
		return x.CulturalBackground
	}
	return ""
}

func (x *Referral) GetSenNeeds() bool {
	if x != nil {
		return x.SenNeeds
	}
	return false
}

func (x *Referral) GetDisabilities() []string {
	if x != nil {
		return x.Disabilities
	}
	return nil
}

func (x *Referral) GetBehaviouralNeeds() bool {
	if x != nil {
		return x.BehaviouralNeeds
	}
	return false
}

func (x *Referral) GetBehaviouralDetails() string {
	if x != nil {
		return x.BehaviouralDetails
	}
	return ""
}

func (x *Referral) GetPlacementType() string {
	if x != nil {
		return x.PlacementType
	}
	return ""
}

func (x *Referral) GetSiblingGroup() bool {
	if x != nil {
		return x.SiblingGroup
	}
	return false
}

func (x *Referral) GetSiblingCount() int32 {
	if x != nil {
		return x.SiblingCount
	}
	return 0
}

func (x *Referral) GetSoloPlacementRequired() bool {
	if x != nil {
		return x.SoloPlacementRequired
	}
	return false
}

func (x *Referral) GetPetsAllowed() bool {
	if x != nil {
		return x.PetsAllowed
	}
	return false
}

func (x *Referral) GetPreferredLocations() []string {
	if x != nil {
		return x.PreferredLocations
	}
	return nil
}

func (x *Referral) GetExcludedLocations() []string {
	if x != nil {
		return x.ExcludedLocations
	}
	return nil
}

func (x *Referral) GetCarerGenderPreference() string {
	if x != nil {
		return x.CarerGenderPreference
	}
	return ""
}

func (x *Referral) GetSupportNeeds() []string {
	if x != nil {
		return x.SupportNeeds
	}
	return nil
}

func (x *Referral) GetMedicalNeeds() []string {
	if x != nil {
		return x.MedicalNeeds
	}
	return nil
}

func (x *Referral) GetEducationalNeeds() []string {
	if x != nil {
		return x.EducationalNeeds
	}
	return nil
}

func (x *Referral) GetUrgency() string {
	if x != nil {
		return x.Urgency
	}
	return ""
}

func (x *Referral) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Referral) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *Referral) GetReceivedAt() string {
	if x != nil {
		return x.ReceivedAt
	}
	return ""
}

func (x *Referral) GetMatchedCarers() []*MatchedCarer {
	if x != nil {
		return x.MatchedCarers
	}
	return nil
}

func (x *Referral) GetAssignedCarerId() string {
	if x != nil {
		return x.AssignedCarerId
	}
	return ""
}

func (x *Referral) GetAssignedAt() string {
	if x != nil {
		return x.AssignedAt
	}
	return ""
}

func (x *Referral) GetStatusHistory() []*StatusChange {
	if x != nil {
		return x.StatusHistory
	}
	return nil
}

func (x *Referral) GetAttachmentPath() string {
	if x != nil {
		return x.AttachmentPath
	}
	return ""
}

func (x *Referral) GetExtractedData() bool {
	if x != nil {
		return x.ExtractedData
	}
	return false
}

type MatchDetail struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Criterion     string                 `protobuf:"bytes,1,opt,name=criterion,proto3" json:"criterion,omitempty"`
	Points        float64                `protobuf:"fixed64,2,opt,name=points,proto3" json:"points,omitempty"`
	Matched       bool                   `protobuf:"varint,3,opt,name=matched,proto3" json:"matched,omitempty"`
	Details       string                 `protobuf:"bytes,4,opt,name=details,proto3" json:"details,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MatchDetail) Reset() {
	*x = MatchDetail{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MatchDetail) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MatchDetail) ProtoMessage() {}

func (x *MatchDetail) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MatchDetail.ProtoReflect.Descriptor instead.
func (*MatchDetail) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{2}
}

func (x *MatchDetail) GetCriterion() string {
	if x != nil {
		return x.Criterion
	}
	return ""
}

func (x *MatchDetail) GetPoints() float64 {
	if x != nil {
		return x.Points
	}
	return 0
}

func (x *MatchDetail) GetMatched() bool {
	if x != nil {
		return x.Matched
	}
	return false
}

func (x *MatchDetail) GetDetails() string {
	if x != nil {
		return x.Details
	}
	return ""
}

type MatchedCarer struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CarerId       string                 `protobuf:"bytes,1,opt,name=carer_id,json=carerId,proto3" json:"carer_id,omitempty"`
	CarerName     string                 `protobuf:"bytes,2,opt,name=carer_name,json=carerName,proto3" json:"carer_name,omitempty"`
	Score         float64                `protobuf:"fixed64,3,opt,name=score,proto3" json:"score,omitempty"`
	MatchDetails  []*MatchDetail         `protobuf:"bytes,4,rep,name=match_details,json=matchDetails,proto3" json:"match_details,omitempty"`
	Recommended   bool                   `protobuf:"varint,5,opt,name=recommended,proto3" json:"recommended,omitempty"`
	Contacted     bool                   `protobuf:"varint,6,opt,name=contacted,proto3" json:"contacted,omitempty"`
	Response      string                 `protobuf:"bytes,7,opt,name=response,proto3" json:"response,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MatchedCarer) Reset() {
	*x = MatchedCarer{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MatchedCarer) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MatchedCarer) ProtoMessage() {}

func (x *MatchedCarer) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MatchedCarer.ProtoReflect.Descriptor instead.
func (*MatchedCarer) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{3}
}

func (x *MatchedCarer) GetCarerId() string {
	if x != nil {
		return x.CarerId
	}
	return ""
}

func (x *MatchedCarer) GetCarerName() string {
	if x != nil {
		return x.CarerName
	}
	return ""
}

func (x *MatchedCarer) GetScore() float64 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *MatchedCarer) GetMatchDetails() []*MatchDetail {
	if x != nil {
		return x.MatchDetails
	}
	return nil
}

func (x *MatchedCarer) GetRecommended() bool {
	if x != nil {
		return x.Recommended
	}
	return false
}

func (x *MatchedCarer) GetContacted() bool {
	if x != nil {
		return x.Contacted
	}
	return false
}

func (x *MatchedCarer) GetResponse() string {
	if x != nil {
		return x.Response
	}
	return ""
}

type MatchingResult struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	CarerId          string                 `protobuf:"bytes,1,opt,name=carer_id,json=carerId,proto3" json:"carer_id,omitempty"`
	Score            float64                `protobuf:"fixed64,2,opt,name=score,proto3" json:"score,omitempty"`
	MaxPossibleScore float64                `protobuf:"fixed64,3,opt,name=max_possible_score,json=maxPossibleScore,proto3" json:"max_possible_score,omitempty"`
	MatchDetails     []*MatchDetail         `protobuf:"bytes,4,rep,name=match_details,json=matchDetails,proto3" json:"match_details,omitempty"`
	Recommended      bool                   `protobuf:"varint,5,opt,name=recommended,proto3" json:"recommended,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *MatchingResult) Reset() {
	*x = MatchingResult{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MatchingResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MatchingResult) ProtoMessage() {}

func (x *MatchingResult) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MatchingResult.ProtoReflect.Descriptor instead.
func (*MatchingResult) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{4}
}

func (x *MatchingResult) GetCarerId() string {
	if x != nil {
		return x.CarerId
	}
	return ""
}

func (x *MatchingResult) GetScore() float64 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *MatchingResult) GetMaxPossibleScore() float64 {
	if x != nil {
		return x.MaxPossibleScore
	}
	return 0
}

func (x *MatchingResult) GetMatchDetails() []*MatchDetail {
	if x != nil {
		return x.MatchDetails
	}
	return nil
}

func (x *MatchingResult) GetRecommended() bool {
	if x != nil {
		return x.Recommended
	}
	return false
}

type StatusChange struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	From          string                 `protobuf:"bytes,1,opt,name=from,proto3" json:"from,omitempty"`
	To            string                 `protobuf:"bytes,2,opt,name=to,proto3" json:"to,omitempty"`
	Timestamp     string                 `protobuf:"bytes,3,opt,name=timestamp,proto3" json:"timestamp,omitempty"` // RFC3339
	ChangedBy     string                 `protobuf:"bytes,4,opt,name=changed_by,json=changedBy,proto3" json:"changed_by,omitempty"`
	Reason        string                 `protobuf:"bytes,5,opt,name=reason,proto3" json:"reason,omitempty"`
	Notes         string                 `protobuf:"bytes,6,opt,name=notes,proto3" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StatusChange) Reset() {
	*x = StatusChange{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StatusChange) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StatusChange) ProtoMessage() {}

func (x *StatusChange) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StatusChange.ProtoReflect.Descriptor instead.
func (*StatusChange) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{5}
}

func (x *StatusChange) GetFrom() string {
	if x != nil {
		return x.From
	}
	return ""
}

func (x *StatusChange) GetTo() string {
	if x != nil {
		return x.To
	}
	return ""
}

func (x *StatusChange) GetTimestamp() string {
	if x != nil {
		return x.Timestamp
	}
	return ""
}

func (x *StatusChange) GetChangedBy() string {
	if x != nil {
		return x.ChangedBy
	}
	return ""
}

func (x *StatusChange) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

func (x *StatusChange) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

type CreateCarerRequest struct {
	state                 protoimpl.MessageState `protogen:"open.v1"`
	Name                  string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Email                 string                 `protobuf:"bytes,2,opt,name=email,proto3" json:"email,omitempty"`
	Phone                 string                 `protobuf:"bytes,3,opt,name=phone,proto3" json:"phone,omitempty"`
	MinAge                int32                  `protobuf:"varint,4,opt,name=min_age,json=minAge,proto3" json:"min_age,omitempty"`
	MaxAge                int32                  `protobuf:"varint,5,opt,name=max_age,json=maxAge,proto3" json:"max_age,omitempty"`
	AcceptsSiblings       bool                   `protobuf:"varint,6,opt,name=accepts_siblings,json=acceptsSiblings,proto3" json:"accepts_siblings,omitempty"`
	AllowsPets            bool                   `protobuf:"varint,7,opt,name=allows_pets,json=allowsPets,proto3" json:"allows_pets,omitempty"`
	BehaviouralExperience bool                   `protobuf:"varint,8,opt,name=behavioural_experience,json=behaviouralExperience,proto3" json:"behavioural_experience,omitempty"`
	SenExperience         bool                   `protobuf:"varint,9,opt,name=sen_experience,json=senExperience,proto3" json:"sen_experience,omitempty"`
	PreferredLocation     string                 `protobuf:"bytes,10,opt,name=preferred_location,json=preferredLocation,proto3" json:"preferred_location,omitempty"`
	ExcludedLocations     []string               `protobuf:"bytes,11,rep,name=excluded_locations,json=excludedLocations,proto3" json:"excluded_locations,omitempty"`
	GenderPreference      string                 `protobuf:"bytes,12,opt,name=gender_preference,json=genderPreference,proto3" json:"gender_preference,omitempty"`
	Capacity              int32                  `protobuf:"varint,13,opt,name=capacity,proto3" json:"capacity,omitempty"`
	Notes                 string                 `protobuf:"bytes,14,opt,name=notes,proto3" json:"notes,omitempty"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *CreateCarerRequest) Reset() {
	*x = CreateCarerRequest{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateCarerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateCarerRequest) ProtoMessage() {}

func (x *CreateCarerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateCarerRequest.ProtoReflect.Descriptor instead.
func (*CreateCarerRequest) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{6}
}

func (x *CreateCarerRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateCarerRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *CreateCarerRequest) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *CreateCarerRequest) GetMinAge() int32 {
	if x != nil {
		return x.MinAge
	}
	return 0
}

func (x *CreateCarerRequest) GetMaxAge() int32 {
	if x != nil {
		return x.MaxAge
	}
	return 0
}

func (x *CreateCarerRequest) GetAcceptsSiblings() bool {
	if x != nil {
		return x.AcceptsSiblings
	}
	return false
}

func (x *CreateCarerRequest) GetAllowsPets() bool {
	if x != nil {
		return x.AllowsPets
	}
	return false
}

func (x *CreateCarerRequest) GetBehaviouralExperience() bool {
	if x != nil {
		return x.BehaviouralExperience
	}
	return false
}

func (x *CreateCarerRequest) GetSenExperience() bool {
	if x != nil {
		return x.SenExperience
	}
	return false
}

func (x *CreateCarerRequest) GetPreferredLocation() string {
	if x != nil {
		return x.PreferredLocation
	}
	return ""
}

func (x *CreateCarerRequest) GetExcludedLocations() []string {
	if x != nil {
		return x.ExcludedLocations
	}
	return nil
}

func (x *CreateCarerRequest) GetGenderPreference() string {
	if x != nil {
		return x.GenderPreference
	}
	return ""
}

func (x *CreateCarerRequest) GetCapacity() int32 {
	if x != nil {
		return x.Capacity
	}
	return 0
}

func (x *CreateCarerRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

type CreateCarerResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Carer         *Carer                 `protobuf:"bytes,1,opt,name=carer,proto3" json:"carer,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateCarerResponse) Reset() {
	*x = CreateCarerResponse{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateCarerResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateCarerResponse) ProtoMessage() {}

func (x *CreateCarerResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateCarerResponse.ProtoReflect.Descriptor instead.
func (*CreateCarerResponse) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{7}
}

func (x *CreateCarerResponse) GetCarer() *Carer {
	if x != nil {
		return x.Carer
	}
	return nil
}

type UpdateCarerRequest struct {
	state                 protoimpl.MessageState `protogen:"open.v1"`
	CarerId               string                 `protobuf:"bytes,1,opt,name=carer_id,json=carerId,proto3" json:"carer_id,omitempty"`
	Name                  *string                `protobuf:"bytes,2,opt,name=name,proto3,oneof" json:"name,omitempty"`
	Email                 *string                `protobuf:"bytes,3,opt,name=email,proto3,oneof" json:"email,omitempty"`
	Phone                 *string                `protobuf:"bytes,4,opt,name=phone,proto3,oneof" json:"phone,omitempty"`
	MinAge                *int32                 `protobuf:"varint,5,opt,name=min_age,json=minAge,proto3,oneof" json:"min_age,omitempty"`
	MaxAge                *int32                 `protobuf:"varint,6,opt,name=max_age,json=maxAge,proto3,oneof" json:"max_age,omitempty"`
	AcceptsSiblings       *bool                  `protobuf:"varint,7,opt,name=accepts_siblings,json=acceptsSiblings,proto3,oneof" json:"accepts_siblings,omitempty"`
	AllowsPets            *bool                  `protobuf:"varint,8,opt,name=allows_pets,json=allowsPets,proto3,oneof" json:"allows_pets,omitempty"`
	BehaviouralExperience *bool                  `protobuf:"varint,9,opt,name=behavioural_experience,json=behaviouralExperience,proto3,oneof" json:"behavioural_experience,omitempty"`
	SenExperience         *bool                  `protobuf:"varint,10,opt,name=sen_experience,json=senExperience,proto3,oneof" json:"sen_experience,omitempty"`
	PreferredLocation     *string                `protobuf:"bytes,11,opt,name=preferred_location,json=preferredLocation,proto3,oneof" json:"preferred_location,omitempty"`
	ExcludedLocations     []string               `protobuf:"bytes,12,rep,name=excluded_locations,json=excludedLocations,proto3" json:"excluded_locations,omitempty"`
	GenderPreference      *string                `protobuf:"bytes,13,opt,name=gender_preference,json=genderPreference,proto3,oneof" json:"gender_preference,omitempty"`
	Capacity              *int32                 `protobuf:"varint,14,opt,name=capacity,proto3,oneof" json:"capacity,omitempty"`
	Status                *string                `protobuf:"bytes,15,opt,name=status,proto3,oneof" json:"status,omitempty"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *UpdateCarerRequest) Reset() {
	*x = UpdateCarerRequest{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateCarerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateCarerRequest) ProtoMessage() {}

func (x *UpdateCarerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateCarerRequest.ProtoReflect.Descriptor instead.
func (*UpdateCarerRequest) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{8}
}

func (x *UpdateCarerRequest) GetCarerId() string {
	if x != nil {
		return x.CarerId
	}
	return ""
}

func (x *UpdateCarerRequest) GetName() string {
	if x != nil && x.Name != nil {
		return *x.Name
	}
	return ""
}

func (x *UpdateCarerRequest) GetEmail() string {
	if x != nil && x.Email != nil {
		return *x.Email
	}
	return ""
}

func (x *UpdateCarerRequest) GetPhone() string {
	if x != nil && x.Phone != nil {
		return *x.Phone
	}
	return ""
}

func (x *UpdateCarerRequest) GetMinAge() int32 {
	if x != nil && x.MinAge != nil {
		return *x.MinAge
	}
	return 0
}

func (x *UpdateCarerRequest) GetMaxAge() int32 {
	if x != nil && x.MaxAge != nil {
		return *x.MaxAge
	}
	return 0
}

func (x *UpdateCarerRequest) GetAcceptsSiblings() bool {
	if x != nil && x.AcceptsSiblings != nil {
		return *x.AcceptsSiblings
	}
	return false
}

func (x *UpdateCarerRequest) GetAllowsPets() bool {
	if x != nil && x.AllowsPets != nil {
		return *x.AllowsPets
	}
	return false
}

func (x *UpdateCarerRequest) GetBehaviouralExperience() bool {
	if x != nil && x.BehaviouralExperience != nil {
		return *x.BehaviouralExperience
	}
	return false
}

func (x *UpdateCarerRequest) GetSenExperience() bool {
	if x != nil && x.SenExperience != nil {
		return *x.SenExperience
	}
	return false
}

func (x *UpdateCarerRequest) GetPreferredLocation() string {
	if x != nil && x.PreferredLocation != nil {
		return *x.PreferredLocation
	}
	return ""
}

func (x *UpdateCarerRequest) GetExcludedLocations() []string {
	if x != nil {
		return x.ExcludedLocations
	}
	return nil
}

func (x *UpdateCarerRequest) GetGenderPreference() string {
	if x != nil && x.GenderPreference != nil {
		return *x.GenderPreference
	}
	return ""
}

func (x *UpdateCarerRequest) GetCapacity() int32 {
	if x != nil && x.Capacity != nil {
		return *x.Capacity
	}
	return 0
}

func (x *UpdateCarerRequest) GetStatus() string {
	if x != nil && x.Status != nil {
		return *x.Status
	}
	return ""
}

type UpdateCarerResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Carer         *Carer                 `protobuf:"bytes,1,opt,name=carer,proto3" json:"carer,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateCarerResponse) Reset() {
	*x = UpdateCarerResponse{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateCarerResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateCarerResponse) ProtoMessage() {}

func (x *UpdateCarerResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateCarerResponse.ProtoReflect.Descriptor instead.
func (*UpdateCarerResponse) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{9}
}

func (x *UpdateCarerResponse) GetCarer() *Carer {
	if x != nil {
		return x.Carer
	}
	return nil
}

type GetCarerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CarerId       string                 `protobuf:"bytes,1,opt,name=carer_id,json=carerId,proto3" json:"carer_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCarerRequest) Reset() {
	*x = GetCarerRequest{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCarerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCarerRequest) ProtoMessage() {}

func (x *GetCarerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCarerRequest.ProtoReflect.Descriptor instead.
func (*GetCarerRequest) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{10}
}

func (x *GetCarerRequest) GetCarerId() string {
	if x != nil {
		return x.CarerId
	}
	return ""
}

type GetCarerResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Carer         *Carer                 `protobuf:"bytes,1,opt,name=carer,proto3" json:"carer,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCarerResponse) Reset() {
	*x = GetCarerResponse{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCarerResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCarerResponse) ProtoMessage() {}

func (x *GetCarerResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCarerResponse.ProtoReflect.Descriptor instead.
func (*GetCarerResponse) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{11}
}

func (x *GetCarerResponse) GetCarer() *Carer {
	if x != nil {
		return x.Carer
	}
	return nil
}

type ListCarersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCarersRequest) Reset() {
	*x = ListCarersRequest{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCarersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCarersRequest) ProtoMessage() {}

func (x *ListCarersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCarersRequest.ProtoReflect.Descriptor instead.
func (*ListCarersRequest) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{12}
}

func (x *ListCarersRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type ListCarersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Carers        []*Carer               `protobuf:"bytes,1,rep,name=carers,proto3" json:"carers,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCarersResponse) Reset() {
	*x = ListCarersResponse{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCarersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCarersResponse) ProtoMessage() {}

func (x *ListCarersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCarersResponse.ProtoReflect.Descriptor instead.
func (*ListCarersResponse) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{13}
}

func (x *ListCarersResponse) GetCarers() []*Carer {
	if x != nil {
		return x.Carers
	}
	return nil
}

type SetCarerStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CarerId       string                 `protobuf:"bytes,1,opt,name=carer_id,json=carerId,proto3" json:"carer_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetCarerStatusRequest) Reset() {
	*x = SetCarerStatusRequest{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetCarerStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetCarerStatusRequest) ProtoMessage() {}

func (x *SetCarerStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetCarerStatusRequest.ProtoReflect.Descriptor instead.
func (*SetCarerStatusRequest) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{14}
}

func (x *SetCarerStatusRequest) GetCarerId() string {
	if x != nil {
		return x.CarerId
	}
	return ""
}

func (x *SetCarerStatusRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type SetCarerStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Carer         *Carer                 `protobuf:"bytes,1,opt,name=carer,proto3" json:"carer,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetCarerStatusResponse) Reset() {
	*x = SetCarerStatusResponse{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetCarerStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetCarerStatusResponse) ProtoMessage() {}

func (x *SetCarerStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetCarerStatusResponse.ProtoReflect.Descriptor instead.
func (*SetCarerStatusResponse) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{15}
}

func (x *SetCarerStatusResponse) GetCarer() *Carer {
	if x != nil {
		return x.Carer
	}
	return nil
}

type CreateReferralRequest struct {
	state                 protoimpl.MessageState `protogen:"open.v1"`
	Age                   int32                  `protobuf:"varint,1,opt,name=age,proto3" json:"age,omitempty"`
	Gender                string                 `protobuf:"bytes,2,opt,name=gender,proto3" json:"gender,omitempty"`
	Ethnicity             string                 `protobuf:"bytes,3,opt,name=ethnicity,proto3" json:"ethnicity,omitempty"`
	CulturalBackground    string                 `protobuf:"bytes,4,opt,name=cultural_background,json=culturalBackground,proto3" json:"cultural_background,omitempty"`
	SenNeeds              bool                   `protobuf:"varint,5,opt,name=sen_needs,json=senNeeds,proto3" json:"sen_needs,omitempty"`
	Disabilities          []string               `protobuf:"bytes,6,rep,name=disabilities,proto3" json:"disabilities,omitempty"`
	BehaviouralNeeds      bool                   `protobuf:"varint,7,opt,name=behavioural_needs,json=behaviouralNeeds,proto3" json:"behavioural_needs,omitempty"`
	BehaviouralDetails    string                 `protobuf:"bytes,8,opt,name=behavioural_details,json=behaviouralDetails,proto3" json:"behavioural_details,omitempty"`
	PlacementType         string                 `protobuf:"bytes,9,opt,name=placement_type,json=placementType,proto3" json:"placement_type,omitempty"`
	SiblingGroup          bool                   `protobuf:"varint,10,opt,name=sibling_group,json=siblingGroup,proto3" json:"sibling_group,omitempty"`
	SiblingCount          int32                  `protobuf:"varint,11,opt,name=sibling_count,json=siblingCount,proto3" json:"sibling_count,omitempty"`
	SoloPlacementRequired bool                   `protobuf:"varint,12,opt,name=solo_placement_required,json=soloPlacementRequired,proto3" json:"solo_placement_required,omitempty"`
	PetsAllowed           bool                   `protobuf:"varint,13,opt,name=pets_allowed,json=petsAllowed,proto3" json:"pets_allowed,omitempty"`
	PreferredLocations    []string               `protobuf:"bytes,14,rep,name=preferred_locations,json=preferredLocations,proto3" json:"preferred_locations,omitempty"`
	ExcludedLocations     []string               `protobuf:"bytes,15,rep,name=excluded_locations,json=excludedLocations,proto3" json:"excluded_locations,omitempty"`
	CarerGenderPreference string                 `protobuf:"bytes,16,opt,name=carer_gender_preference,json=carerGenderPreference,proto3" json:"carer_gender_preference,omitempty"`
	SupportNeeds          []string               `protobuf:"bytes,17,rep,name=support_needs,json=supportNeeds,proto3" json:"support_needs,omitempty"`
	MedicalNeeds          []string               `protobuf:"bytes,18,rep,name=medical_needs,json=medicalNeeds,proto3" json:"medical_needs,omitempty"`
	EducationalNeeds      []string               `protobuf:"bytes,19,rep,name=educational_needs,json=educationalNeeds,proto3" json:"educational_needs,omitempty"`
	Urgency               string                 `protobuf:"bytes,20,opt,name=urgency,proto3" json:"urgency,omitempty"`
	Source                string                 `protobuf:"bytes,21,opt,name=source,proto3" json:"source,omitempty"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *CreateReferralRequest) Reset() {
	*x = CreateReferralRequest{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateReferralRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateReferralRequest) ProtoMessage() {}

func (x *CreateReferralRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateReferralRequest.ProtoReflect.Descriptor instead.
func (*CreateReferralRequest) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{16}
}

func (x *CreateReferralRequest) GetAge() int32 {
	if x != nil {
		return x.Age
	}
	return 0
}

func (x *CreateReferralRequest) GetGender() string {
	if x != nil {
		return x.Gender
	}
	return ""
}

func (x *CreateReferralRequest) GetEthnicity() string {
	if x != nil {
		return x.Ethnicity
	}
	return ""
}

func (x *CreateReferralRequest) GetCulturalBackground() string {
	if x != nil {
		return x.CulturalBackground
	}
	return ""
}

func (x *CreateReferralRequest) GetSenNeeds() bool {
	if x != nil {
		return x.SenNeeds
	}
	return false
}

func (x *CreateReferralRequest) GetDisabilities() []string {
	if x != nil {
		return x.Disabilities
	}
	return nil
}

func (x *CreateReferralRequest) GetBehaviouralNeeds() bool {
	if x != nil {
		return x.BehaviouralNeeds
	}
	return false
}

func (x *CreateReferralRequest) GetBehaviouralDetails() string {
	if x != nil {
		return x.BehaviouralDetails
	}
	return ""
}

func (x *CreateReferralRequest) GetPlacementType() string {
	if x != nil {
		return x.PlacementType
	}
	return ""
}

func (x *CreateReferralRequest) GetSiblingGroup() bool {
	if x != nil {
		return x.SiblingGroup
	}
	return false
}

func (x *CreateReferralRequest) GetSiblingCount() int32 {
	if x != nil {
		return x.SiblingCount
	}
	return 0
}

func (x *CreateReferralRequest) GetSoloPlacementRequired() bool {
	if x != nil {
		return x.SoloPlacementRequired
	}
	return false
}

func (x *CreateReferralRequest) GetPetsAllowed() bool {
	if x != nil {
		return x.PetsAllowed
	}
	return false
}

func (x *CreateReferralRequest) GetPreferredLocations() []string {
	if x != nil {
		return x.PreferredLocations
	}
	return nil
}

func (x *CreateReferralRequest) GetExcludedLocations() []string {
	if x != nil {
		return x.ExcludedLocations
	}
	return nil
}

func (x *CreateReferralRequest) GetCarerGenderPreference() string {
	if x != nil {
		return x.CarerGenderPreference
	}
	return ""
}

func (x *CreateReferralRequest) GetSupportNeeds() []string {
	if x != nil {
		return x.SupportNeeds
	}
	return nil
}

func (x *CreateReferralRequest) GetMedicalNeeds() []string {
	if x != nil {
		return x.MedicalNeeds
	}
	return nil
}

func (x *CreateReferralRequest) GetEducationalNeeds() []string {
	if x != nil {
		return x.EducationalNeeds
	}
	return nil
}

func (x *CreateReferralRequest) GetUrgency() string {
	if x != nil {
		return x.Urgency
	}
	return ""
}

func (x *CreateReferralRequest) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

type CreateReferralResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Referral      *Referral              `protobuf:"bytes,1,opt,name=referral,proto3" json:"referral,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateReferralResponse) Reset() {
	*x = CreateReferralResponse{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateReferralResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateReferralResponse) ProtoMessage() {}

func (x *CreateReferralResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateReferralResponse.ProtoReflect.Descriptor instead.
func (*CreateReferralResponse) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{17}
}

func (x *CreateReferralResponse) GetReferral() *Referral {
	if x != nil {
		return x.Referral
	}
	return nil
}

type GetReferralRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReferralId    string                 `protobuf:"bytes,1,opt,name=referral_id,json=referralId,proto3" json:"referral_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReferralRequest) Reset() {
	*x = GetReferralRequest{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReferralRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReferralRequest) ProtoMessage() {}

func (x *GetReferralRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReferralRequest.ProtoReflect.Descriptor instead.
func (*GetReferralRequest) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{18}
}

func (x *GetReferralRequest) GetReferralId() string {
	if x != nil {
		return x.ReferralId
	}
	return ""
}

type GetReferralResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Referral      *Referral              `protobuf:"bytes,1,opt,name=referral,proto3" json:"referral,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReferralResponse) Reset() {
	*x = GetReferralResponse{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReferralResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReferralResponse) ProtoMessage() {}

func (x *GetReferralResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReferralResponse.ProtoReflect.Descriptor instead.
func (*GetReferralResponse) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{19}
}

func (x *GetReferralResponse) GetReferral() *Referral {
	if x != nil {
		return x.Referral
	}
	return nil
}

type ListReferralsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`                     // empty = all
	Urgency       string                 `protobuf:"bytes,2,opt,name=urgency,proto3" json:"urgency,omitempty"`                   // empty = all
	FromDate      string                 `protobuf:"bytes,3,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD
	ToDate        string                 `protobuf:"bytes,4,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReferralsRequest) Reset() {
	*x = ListReferralsRequest{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReferralsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReferralsRequest) ProtoMessage() {}

func (x *ListReferralsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReferralsRequest.ProtoReflect.Descriptor instead.
func (*ListReferralsRequest) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{20}
}

func (x *ListReferralsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListReferralsRequest) GetUrgency() string {
	if x != nil {
		return x.Urgency
	}
	return ""
}

func (x *ListReferralsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListReferralsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListReferralsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Referrals     []*Referral            `protobuf:"bytes,1,rep,name=referrals,proto3" json:"referrals,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReferralsResponse) Reset() {
	*x = ListReferralsResponse{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReferralsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReferralsResponse) ProtoMessage() {}

func (x *ListReferralsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReferralsResponse.ProtoReflect.Descriptor instead.
func (*ListReferralsResponse) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{21}
}

func (x *ListReferralsResponse) GetReferrals() []*Referral {
	if x != nil {
		return x.Referrals
	}
	return nil
}

type TransitionReferralRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReferralId    string                 `protobuf:"bytes,1,opt,name=referral_id,json=referralId,proto3" json:"referral_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Reason        string                 `protobuf:"bytes,3,opt,name=reason,proto3" json:"reason,omitempty"`
	Notes         string                 `protobuf:"bytes,4,opt,name=notes,proto3" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TransitionReferralRequest) Reset() {
	*x = TransitionReferralRequest{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TransitionReferralRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TransitionReferralRequest) ProtoMessage() {}

func (x *TransitionReferralRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TransitionReferralRequest.ProtoReflect.Descriptor instead.
func (*TransitionReferralRequest) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{22}
}

func (x *TransitionReferralRequest) GetReferralId() string {
	if x != nil {
		return x.ReferralId
	}
	return ""
}

func (x *TransitionReferralRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *TransitionReferralRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

func (x *TransitionReferralRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

type TransitionReferralResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Referral      *Referral              `protobuf:"bytes,1,opt,name=referral,proto3" json:"referral,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TransitionReferralResponse) Reset() {
	*x = TransitionReferralResponse{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TransitionReferralResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TransitionReferralResponse) ProtoMessage() {}

func (x *TransitionReferralResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TransitionReferralResponse.ProtoReflect.Descriptor instead.
func (*TransitionReferralResponse) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{23}
}

func (x *TransitionReferralResponse) GetReferral() *Referral {
	if x != nil {
		return x.Referral
	}
	return nil
}

type AssignCarerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReferralId    string                 `protobuf:"bytes,1,opt,name=referral_id,json=referralId,proto3" json:"referral_id,omitempty"`
	CarerId       string                 `protobuf:"bytes,2,opt,name=carer_id,json=carerId,proto3" json:"carer_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AssignCarerRequest) Reset() {
	*x = AssignCarerRequest{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AssignCarerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AssignCarerRequest) ProtoMessage() {}

func (x *AssignCarerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AssignCarerRequest.ProtoReflect.Descriptor instead.
func (*AssignCarerRequest) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{24}
}

func (x *AssignCarerRequest) GetReferralId() string {
	if x != nil {
		return x.ReferralId
	}
	return ""
}

func (x *AssignCarerRequest) GetCarerId() string {
	if x != nil {
		return x.CarerId
	}
	return ""
}

type AssignCarerResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Referral      *Referral              `protobuf:"bytes,1,opt,name=referral,proto3" json:"referral,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AssignCarerResponse) Reset() {
	*x = AssignCarerResponse{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AssignCarerResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AssignCarerResponse) ProtoMessage() {}

func (x *AssignCarerResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AssignCarerResponse.ProtoReflect.Descriptor instead.
func (*AssignCarerResponse) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{25}
}

func (x *AssignCarerResponse) GetReferral() *Referral {
	if x != nil {
		return x.Referral
	}
	return nil
}

type MatchReferralRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReferralId    string                 `protobuf:"bytes,1,opt,name=referral_id,json=referralId,proto3" json:"referral_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MatchReferralRequest) Reset() {
	*x = MatchReferralRequest{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MatchReferralRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MatchReferralRequest) ProtoMessage() {}

func (x *MatchReferralRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MatchReferralRequest.ProtoReflect.Descriptor instead.
func (*MatchReferralRequest) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{26}
}

func (x *MatchReferralRequest) GetReferralId() string {
	if x != nil {
		return x.ReferralId
	}
	return ""
}

type MatchReferralResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Referral      *Referral              `protobuf:"bytes,1,opt,name=referral,proto3" json:"referral,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MatchReferralResponse) Reset() {
	*x = MatchReferralResponse{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MatchReferralResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MatchReferralResponse) ProtoMessage() {}

func (x *MatchReferralResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MatchReferralResponse.ProtoReflect.Descriptor instead.
func (*MatchReferralResponse) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{27}
}

func (x *MatchReferralResponse) GetReferral() *Referral {
	if x != nil {
		return x.Referral
	}
	return nil
}

type CriterionWeight struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Weight        float64                `protobuf:"fixed64,1,opt,name=weight,proto3" json:"weight,omitempty"`
	Points        float64                `protobuf:"fixed64,2,opt,name=points,proto3" json:"points,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CriterionWeight) Reset() {
	*x = CriterionWeight{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CriterionWeight) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CriterionWeight) ProtoMessage() {}

func (x *CriterionWeight) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CriterionWeight.ProtoReflect.Descriptor instead.
func (*CriterionWeight) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{28}
}

func (x *CriterionWeight) GetWeight() float64 {
	if x != nil {
		return x.Weight
	}
	return 0
}

func (x *CriterionWeight) GetPoints() float64 {
	if x != nil {
		return x.Points
	}
	return 0
}

type CriteriaOverride struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AgeRange      *CriterionWeight       `protobuf:"bytes,1,opt,name=age_range,json=ageRange,proto3" json:"age_range,omitempty"`
	Siblings      *CriterionWeight       `protobuf:"bytes,2,opt,name=siblings,proto3" json:"siblings,omitempty"`
	Behavioural   *CriterionWeight       `protobuf:"bytes,3,opt,name=behavioural,proto3" json:"behavioural,omitempty"`
	Location      *CriterionWeight       `protobuf:"bytes,4,opt,name=location,proto3" json:"location,omitempty"`
	Sen           *CriterionWeight       `protobuf:"bytes,5,opt,name=sen,proto3" json:"sen,omitempty"`
	Pets          *CriterionWeight       `protobuf:"bytes,6,opt,name=pets,proto3" json:"pets,omitempty"`
	Capacity      *CriterionWeight       `protobuf:"bytes,7,opt,name=capacity,proto3" json:"capacity,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CriteriaOverride) Reset() {
	*x = CriteriaOverride{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CriteriaOverride) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CriteriaOverride) ProtoMessage() {}

func (x *CriteriaOverride) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CriteriaOverride.ProtoReflect.Descriptor instead.
func (*CriteriaOverride) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{29}
}

func (x *CriteriaOverride) GetAgeRange() *CriterionWeight {
	if x != nil {
		return x.AgeRange
	}
	return nil
}

func (x *CriteriaOverride) GetSiblings() *CriterionWeight {
	if x != nil {
		return x.Siblings
	}
	return nil
}

func (x *CriteriaOverride) GetBehavioural() *CriterionWeight {
	if x != nil {
		return x.Behavioural
	}
	return nil
}

func (x *CriteriaOverride) GetLocation() *CriterionWeight {
	if x != nil {
		return x.Location
	}
	return nil
}

func (x *CriteriaOverride) GetSen() *CriterionWeight {
	if x != nil {
		return x.Sen
	}
	return nil
}

func (x *CriteriaOverride) GetPets() *CriterionWeight {
	if x != nil {
		return x.Pets
	}
	return nil
}

func (x *CriteriaOverride) GetCapacity() *CriterionWeight {
	if x != nil {
		return x.Capacity
	}
	return nil
}

type PreviewMatchingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReferralId    string                 `protobuf:"bytes,1,opt,name=referral_id,json=referralId,proto3" json:"referral_id,omitempty"`
	Criteria      *CriteriaOverride      `protobuf:"bytes,2,opt,name=criteria,proto3" json:"criteria,omitempty"` // unset = default weights
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PreviewMatchingRequest) Reset() {
	*x = PreviewMatchingRequest{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PreviewMatchingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PreviewMatchingRequest) ProtoMessage() {}

func (x *PreviewMatchingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PreviewMatchingRequest.ProtoReflect.Descriptor instead.
func (*PreviewMatchingRequest) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{30}
}

func (x *PreviewMatchingRequest) GetReferralId() string {
	if x != nil {
		return x.ReferralId
	}
	return ""
}

func (x *PreviewMatchingRequest) GetCriteria() *CriteriaOverride {
	if x != nil {
		return x.Criteria
	}
	return nil
}

type PreviewMatchingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Results       []*MatchingResult      `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PreviewMatchingResponse) Reset() {
	*x = PreviewMatchingResponse{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PreviewMatchingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PreviewMatchingResponse) ProtoMessage() {}

func (x *PreviewMatchingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PreviewMatchingResponse.ProtoReflect.Descriptor instead.
func (*PreviewMatchingResponse) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{31}
}

func (x *PreviewMatchingResponse) GetResults() []*MatchingResult {
	if x != nil {
		return x.Results
	}
	return nil
}

type ExportMatchesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReferralId    string                 `protobuf:"bytes,1,opt,name=referral_id,json=referralId,proto3" json:"referral_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportMatchesRequest) Reset() {
	*x = ExportMatchesRequest{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportMatchesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportMatchesRequest) ProtoMessage() {}

func (x *ExportMatchesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportMatchesRequest.ProtoReflect.Descriptor instead.
func (*ExportMatchesRequest) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{32}
}

func (x *ExportMatchesRequest) GetReferralId() string {
	if x != nil {
		return x.ReferralId
	}
	return ""
}

type ExportMatchesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportMatchesResponse) Reset() {
	*x = ExportMatchesResponse{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportMatchesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportMatchesResponse) ProtoMessage() {}

func (x *ExportMatchesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportMatchesResponse.ProtoReflect.Descriptor instead.
func (*ExportMatchesResponse) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{33}
}

func (x *ExportMatchesResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type ExportReferralsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReferralsRequest) Reset() {
	*x = ExportReferralsRequest{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReferralsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReferralsRequest) ProtoMessage() {}

func (x *ExportReferralsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReferralsRequest.ProtoReflect.Descriptor instead.
func (*ExportReferralsRequest) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{34}
}

func (x *ExportReferralsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ExportReferralsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportReferralsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportReferralsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReferralsResponse) Reset() {
	*x = ExportReferralsResponse{}
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReferralsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReferralsResponse) ProtoMessage() {}

func (x *ExportReferralsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fostercare_v1_fostercare_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReferralsResponse.ProtoReflect.Descriptor instead.
func (*ExportReferralsResponse) Descriptor() ([]byte, []int) {
	return file_fostercare_v1_fostercare_proto_rawDescGZIP(), []int{35}
}

func (x *ExportReferralsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_fostercare_v1_fostercare_proto protoreflect.FileDescriptor

const file_fostercare_v1_fostercare_proto_rawDesc = "" +
	"\n" +
	"\x1efostercare/v1/fostercare.proto\x12\rfostercare.v1\"\xb0\x04\n" +
	"\x05Carer\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x14\n" +
	"\x05email\x18\x03 \x01(\tR\x05email\x12\x14\n" +
	"\x05phone\x18\x04 \x01(\tR\x05phone\x12\x17\n" +
	"\amin_age\x18\x05 \x01(\x05R\x06minAge\x12\x17\n" +
	"\amax_age\x18\x06 \x01(\x05R\x06maxAge\x12)\n" +
	"\x10accepts_siblings\x18\a \x01(\bR\x0facceptsSiblings\x12\x1f\n" +
	"\vallows_pets\x18\b \x01(\bR\n" +
	"allowsPets\x125\n" +
	"\x16behavioural_experience\x18\t \x01(\bR\x15behaviouralExperience\x12%\n" +
	"\x0esen_experience\x18\n" +
	" \x01(\bR\rsenExperience\x12-\n" +
	"\x12preferred_location\x18\v \x01(\tR\x11preferredLocation\x12-\n" +
	"\x12excluded_locations\x18\f \x03(\tR\x11excludedLocations\x12+\n" +
	"\x11gender_preference\x18\r \x01(\tR\x10genderPreference\x12\x1a\n" +
	"\bcapacity\x18\x0e \x01(\x05R\bcapacity\x12\x16\n" +
	"\x06status\x18\x0f \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"created_at\x18\x10 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x11 \x01(\tR\tupdatedAt\"\x9d\t\n" +
	"\bReferral\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x10\n" +
	"\x03age\x18\x02 \x01(\x05R\x03age\x12\x16\n" +
	"\x06gender\x18\x03 \x01(\tR\x06gender\x12\x1c\n" +
	"\tethnicity\x18\x04 \x01(\tR\tethnicity\x12/\n" +
	"\x13cultural_background\x18\x05 \x01(\tR\x12culturalBackground\x12\x1b\n" +
	"\tsen_needs\x18\x06 \x01(\bR\bsenNeeds\x12\"\n" +
	"\fdisabilities\x18\a \x03(\tR\fdisabilities\x12+\n" +
	"\x11behavioural_needs\x18\b \x01(\bR\x10behaviouralNeeds\x12/\n" +
	"\x13behavioural_details\x18\t \x01(\tR\x12behaviouralDetails\x12%\n" +
	"\x0eplacement_type\x18\n" +
	" \x01(\tR\rplacementType\x12#\n" +
	"\rsibling_group\x18\v \x01(\bR\fsiblingGroup\x12#\n" +
	"\rsibling_count\x18\f \x01(\x05R\fsiblingCount\x126\n" +
	"\x17solo_placement_required\x18\r \x01(\bR\x15soloPlacementRequired\x12!\n" +
	"\fpets_allowed\x18\x0e \x01(\bR\vpetsAllowed\x12/\n" +
	"\x13preferred_locations\x18\x0f \x03(\tR\x12preferredLocations\x12-\n" +
	"\x12excluded_locations\x18\x10 \x03(\tR\x11excludedLocations\x126\n" +
	"\x17carer_gender_preference\x18\x11 \x01(\tR\x15carerGenderPreference\x12#\n" +
	"\rsupport_needs\x18\x12 \x03(\tR\fsupportNeeds\x12#\n" +
	"\rmedical_needs\x18\x13 \x03(\tR\fmedicalNeeds\x12+\n" +
	"\x11educational_needs\x18\x14 \x03(\tR\x10educationalNeeds\x12\x18\n" +
	"\aurgency\x18\x15 \x01(\tR\aurgency\x12\x16\n" +
	"\x06status\x18\x16 \x01(\tR\x06status\x12\x16\n" +
	"\x06source\x18\x17 \x01(\tR\x06source\x12\x1f\n" +
	"\vreceived_at\x18\x18 \x01(\tR\n" +
	"receivedAt\x12B\n" +
	"\x0ematched_carers\x18\x19 \x03(\v2\x1b.fostercare.v1.MatchedCarerR\rmatchedCarers\x12*\n" +
	"\x11assigned_carer_id\x18\x1a \x01(\tR\x0fassignedCarerId\x12\x1f\n" +
	"\vassigned_at\x18\x1b \x01(\tR\n" +
	"assignedAt\x12B\n" +
	"\x0estatus_history\x18\x1c \x03(\v2\x1b.fostercare.v1.StatusChangeR\rstatusHistory\x12'\n" +
	"\x0fattachment_path\x18\x1d \x01(\tR\x0eattachmentPath\x12%\n" +
	"\x0eextracted_data\x18\x1e \x01(\bR\rextractedData\"w\n" +
	"\vMatchDetail\x12\x1c\n" +
	"\tcriterion\x18\x01 \x01(\tR\tcriterion\x12\x16\n" +
	"\x06points\x18\x02 \x01(\x01R\x06points\x12\x18\n" +
	"\amatched\x18\x03 \x01(\bR\amatched\x12\x18\n" +
	"\adetails\x18\x04 \x01(\tR\adetails\"\xfb\x01\n" +
	"\fMatchedCarer\x12\x19\n" +
	"\bcarer_id\x18\x01 \x01(\tR\acarerId\x12\x1d\n" +
	"\n" +
	"carer_name\x18\x02 \x01(\tR\tcarerName\x12\x14\n" +
	"\x05score\x18\x03 \x01(\x01R\x05score\x12?\n" +
	"\rmatch_details\x18\x04 \x03(\v2\x1a.fostercare.v1.MatchDetailR\fmatchDetails\x12 \n" +
	"\vrecommended\x18\x05 \x01(\bR\vrecommended\x12\x1c\n" +
	"\tcontacted\x18\x06 \x01(\bR\tcontacted\x12\x1a\n" +
	"\bresponse\x18\a \x01(\tR\bresponse\"\xd2\x01\n" +
	"\x0eMatchingResult\x12\x19\n" +
	"\bcarer_id\x18\x01 \x01(\tR\acarerId\x12\x14\n" +
	"\x05score\x18\x02 \x01(\x01R\x05score\x12,\n" +
	"\x12max_possible_score\x18\x03 \x01(\x01R\x10maxPossibleScore\x12?\n" +
	"\rmatch_details\x18\x04 \x03(\v2\x1a.fostercare.v1.MatchDetailR\fmatchDetails\x12 \n" +
	"\vrecommended\x18\x05 \x01(\bR\vrecommended\"\x9d\x01\n" +
	"\fStatusChange\x12\x12\n" +
	"\x04from\x18\x01 \x01(\tR\x04from\x12\x0e\n" +
	"\x02to\x18\x02 \x01(\tR\x02to\x12\x1c\n" +
	"\ttimestamp\x18\x03 \x01(\tR\ttimestamp\x12\x1d\n" +
	"\n" +
	"changed_by\x18\x04 \x01(\tR\tchangedBy\x12\x16\n" +
	"\x06reason\x18\x05 \x01(\tR\x06reason\x12\x14\n" +
	"\x05notes\x18\x06 \x01(\tR\x05notes\"\xed\x03\n" +
	"\x12CreateCarerRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x14\n" +
	"\x05email\x18\x02 \x01(\tR\x05email\x12\x14\n" +
	"\x05phone\x18\x03 \x01(\tR\x05phone\x12\x17\n" +
	"\amin_age\x18\x04 \x01(\x05R\x06minAge\x12\x17\n" +
	"\amax_age\x18\x05 \x01(\x05R\x06maxAge\x12)\n" +
	"\x10accepts_siblings\x18\x06 \x01(\bR\x0facceptsSiblings\x12\x1f\n" +
	"\vallows_pets\x18\a \x01(\bR\n" +
	"allowsPets\x125\n" +
	"\x16behavioural_experience\x18\b \x01(\bR\x15behaviouralExperience\x12%\n" +
	"\x0esen_experience\x18\t \x01(\bR\rsenExperience\x12-\n" +
	"\x12preferred_location\x18\n" +
	" \x01(\tR\x11preferredLocation\x12-\n" +
	"\x12excluded_locations\x18\v \x03(\tR\x11excludedLocations\x12+\n" +
	"\x11gender_preference\x18\f \x01(\tR\x10genderPreference\x12\x1a\n" +
	"\bcapacity\x18\r \x01(\x05R\bcapacity\x12\x14\n" +
	"\x05notes\x18\x0e \x01(\tR\x05notes\"A\n" +
	"\x13CreateCarerResponse\x12*\n" +
	"\x05carer\x18\x01 \x01(\v2\x14.fostercare.v1.CarerR\x05carer\"\x98\x06\n" +
	"\x12UpdateCarerRequest\x12\x19\n" +
	"\bcarer_id\x18\x01 \x01(\tR\acarerId\x12\x17\n" +
	"\x04name\x18\x02 \x01(\tH\x00R\x04name\x88\x01\x01\x12\x19\n" +
	"\x05email\x18\x03 \x01(\tH\x01R\x05email\x88\x01\x01\x12\x19\n" +
	"\x05phone\x18\x04 \x01(\tH\x02R\x05phone\x88\x01\x01\x12\x1c\n" +
	"\amin_age\x18\x05 \x01(\x05H\x03R\x06minAge\x88\x01\x01\x12\x1c\n" +
	"\amax_age\x18\x06 \x01(\x05H\x04R\x06maxAge\x88\x01\x01\x12.\n" +
	"\x10accepts_siblings\x18\a \x01(\bH\x05R\x0facceptsSiblings\x88\x01\x01\x12$\n" +
	"\vallows_pets\x18\b \x01(\bH\x06R\n" +
	"allowsPets\x88\x01\x01\x12:\n" +
	"\x16behavioural_experience\x18\t \x01(\bH\aR\x15behaviouralExperience\x88\x01\x01\x12*\n" +
	"\x0esen_experience\x18\n" +
	" \x01(\bH\bR\rsenExperience\x88\x01\x01\x122\n" +
	"\x12preferred_location\x18\v \x01(\tH\tR\x11preferredLocation\x88\x01\x01\x12-\n" +
	"\x12excluded_locations\x18\f \x03(\tR\x11excludedLocations\x120\n" +
	"\x11gender_preference\x18\r \x01(\tH\n" +
	"R\x10genderPreference\x88\x01\x01\x12\x1f\n" +
	"\bcapacity\x18\x0e \x01(\x05H\vR\bcapacity\x88\x01\x01\x12\x1b\n" +
	"\x06status\x18\x0f \x01(\tH\fR\x06status\x88\x01\x01B\a\n" +
	"\x05_nameB\b\n" +
	"\x06_emailB\b\n" +
	"\x06_phoneB\n" +
	"\n" +
	"\b_min_ageB\n" +
	"\n" +
	"\b_max_ageB\x13\n" +
	"\x11_accepts_siblingsB\x0e\n" +
	"\f_allows_petsB\x19\n" +
	"\x17_behavioural_experienceB\x11\n" +
	"\x0f_sen_experienceB\x15\n" +
	"\x13_preferred_locationB\x14\n" +
	"\x12_gender_preferenceB\v\n" +
	"\t_capacityB\t\n" +
	"\a_status\"A\n" +
	"\x13UpdateCarerResponse\x12*\n" +
	"\x05carer\x18\x01 \x01(\v2\x14.fostercare.v1.CarerR\x05carer\",\n" +
	"\x0fGetCarerRequest\x12\x19\n" +
	"\bcarer_id\x18\x01 \x01(\tR\acarerId\">\n" +
	"\x10GetCarerResponse\x12*\n" +
	"\x05carer\x18\x01 \x01(\v2\x14.fostercare.v1.CarerR\x05carer\"+\n" +
	"\x11ListCarersRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\"B\n" +
	"\x12ListCarersResponse\x12,\n" +
	"\x06carers\x18\x01 \x03(\v2\x14.fostercare.v1.CarerR\x06carers\"J\n" +
	"\x15SetCarerStatusRequest\x12\x19\n" +
	"\bcarer_id\x18\x01 \x01(\tR\acarerId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\"D\n" +
	"\x16SetCarerStatusResponse\x12*\n" +
	"\x05carer\x18\x01 \x01(\v2\x14.fostercare.v1.CarerR\x05carer\"\xbc\x06\n" +
	"\x15CreateReferralRequest\x12\x10\n" +
	"\x03age\x18\x01 \x01(\x05R\x03age\x12\x16\n" +
	"\x06gender\x18\x02 \x01(\tR\x06gender\x12\x1c\n" +
	"\tethnicity\x18\x03 \x01(\tR\tethnicity\x12/\n" +
	"\x13cultural_background\x18\x04 \x01(\tR\x12culturalBackground\x12\x1b\n" +
	"\tsen_needs\x18\x05 \x01(\bR\bsenNeeds\x12\"\n" +
	"\fdisabilities\x18\x06 \x03(\tR\fdisabilities\x12+\n" +
	"\x11behavioural_needs\x18\a \x01(\bR\x10behaviouralNeeds\x12/\n" +
	"\x13behavioural_details\x18\b \x01(\tR\x12behaviouralDetails\x12%\n" +
	"\x0eplacement_type\x18\t \x01(\tR\rplacementType\x12#\n" +
	"\rsibling_group\x18\n" +
	" \x01(\bR\fsiblingGroup\x12#\n" +
	"\rsibling_count\x18\v \x01(\x05R\fsiblingCount\x126\n" +
	"\x17solo_placement_required\x18\f \x01(\bR\x15soloPlacementRequired\x12!\n" +
	"\fpets_allowed\x18\r \x01(\bR\vpetsAllowed\x12/\n" +
	"\x13preferred_locations\x18\x0e \x03(\tR\x12preferredLocations\x12-\n" +
	"\x12excluded_locations\x18\x0f \x03(\tR\x11excludedLocations\x126\n" +
	"\x17carer_gender_preference\x18\x10 \x01(\tR\x15carerGenderPreference\x12#\n" +
	"\rsupport_needs\x18\x11 \x03(\tR\fsupportNeeds\x12#\n" +
	"\rmedical_needs\x18\x12 \x03(\tR\fmedicalNeeds\x12+\n" +
	"\x11educational_needs\x18\x13 \x03(\tR\x10educationalNeeds\x12\x18\n" +
	"\aurgency\x18\x14 \x01(\tR\aurgency\x12\x16\n" +
	"\x06source\x18\x15 \x01(\tR\x06source\"M\n" +
	"\x16CreateReferralResponse\x123\n" +
	"\breferral\x18\x01 \x01(\v2\x17.fostercare.v1.ReferralR\breferral\"5\n" +
	"\x12GetReferralRequest\x12\x1f\n" +
	"\vreferral_id\x18\x01 \x01(\tR\n" +
	"referralId\"J\n" +
	"\x13GetReferralResponse\x123\n" +
	"\breferral\x18\x01 \x01(\v2\x17.fostercare.v1.ReferralR\breferral\"~\n" +
	"\x14ListReferralsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x18\n" +
	"\aurgency\x18\x02 \x01(\tR\aurgency\x12\x1b\n" +
	"\tfrom_date\x18\x03 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x04 \x01(\tR\x06toDate\"N\n" +
	"\x15ListReferralsResponse\x125\n" +
	"\treferrals\x18\x01 \x03(\v2\x17.fostercare.v1.ReferralR\treferrals\"\x82\x01\n" +
	"\x19TransitionReferralRequest\x12\x1f\n" +
	"\vreferral_id\x18\x01 \x01(\tR\n" +
	"referralId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x16\n" +
	"\x06reason\x18\x03 \x01(\tR\x06reason\x12\x14\n" +
	"\x05notes\x18\x04 \x01(\tR\x05notes\"Q\n" +
	"\x1aTransitionReferralResponse\x123\n" +
	"\breferral\x18\x01 \x01(\v2\x17.fostercare.v1.ReferralR\breferral\"P\n" +
	"\x12AssignCarerRequest\x12\x1f\n" +
	"\vreferral_id\x18\x01 \x01(\tR\n" +
	"referralId\x12\x19\n" +
	"\bcarer_id\x18\x02 \x01(\tR\acarerId\"J\n" +
	"\x13AssignCarerResponse\x123\n" +
	"\breferral\x18\x01 \x01(\v2\x17.fostercare.v1.ReferralR\breferral\"7\n" +
	"\x14MatchReferralRequest\x12\x1f\n" +
	"\vreferral_id\x18\x01 \x01(\tR\n" +
	"referralId\"L\n" +
	"\x15MatchReferralResponse\x123\n" +
	"\breferral\x18\x01 \x01(\v2\x17.fostercare.v1.ReferralR\breferral\"A\n" +
	"\x0fCriterionWeight\x12\x16\n" +
	"\x06weight\x18\x01 \x01(\x01R\x06weight\x12\x16\n" +
	"\x06points\x18\x02 \x01(\x01R\x06points\"\xab\x03\n" +
	"\x10CriteriaOverride\x12;\n" +
	"\tage_range\x18\x01 \x01(\v2\x1e.fostercare.v1.CriterionWeightR\bageRange\x12:\n" +
	"\bsiblings\x18\x02 \x01(\v2\x1e.fostercare.v1.CriterionWeightR\bsiblings\x12@\n" +
	"\vbehavioural\x18\x03 \x01(\v2\x1e.fostercare.v1.CriterionWeightR\vbehavioural\x12:\n" +
	"\blocation\x18\x04 \x01(\v2\x1e.fostercare.v1.CriterionWeightR\blocation\x120\n" +
	"\x03sen\x18\x05 \x01(\v2\x1e.fostercare.v1.CriterionWeightR\x03sen\x122\n" +
	"\x04pets\x18\x06 \x01(\v2\x1e.fostercare.v1.CriterionWeightR\x04pets\x12:\n" +
	"\bcapacity\x18\a \x01(\v2\x1e.fostercare.v1.CriterionWeightR\bcapacity\"v\n" +
	"\x16PreviewMatchingRequest\x12\x1f\n" +
	"\vreferral_id\x18\x01 \x01(\tR\n" +
	"referralId\x12;\n" +
	"\bcriteria\x18\x02 \x01(\v2\x1f.fostercare.v1.CriteriaOverrideR\bcriteria\"R\n" +
	"\x17PreviewMatchingResponse\x127\n" +
	"\aresults\x18\x01 \x03(\v2\x1d.fostercare.v1.MatchingResultR\aresults\"7\n" +
	"\x14ExportMatchesRequest\x12\x1f\n" +
	"\vreferral_id\x18\x01 \x01(\tR\n" +
	"referralId\"+\n" +
	"\x15ExportMatchesResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"f\n" +
	"\x16ExportReferralsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"-\n" +
	"\x17ExportReferralsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xba\x03\n" +
	"\rCarersService\x12T\n" +
	"\vCreateCarer\x12!.fostercare.v1.CreateCarerRequest\x1a\".fostercare.v1.CreateCarerResponse\x12T\n" +
	"\vUpdateCarer\x12!.fostercare.v1.UpdateCarerRequest\x1a\".fostercare.v1.UpdateCarerResponse\x12K\n" +
	"\bGetCarer\x12\x1e.fostercare.v1.GetCarerRequest\x1a\x1f.fostercare.v1.GetCarerResponse\x12Q\n" +
	"\n" +
	"ListCarers\x12 .fostercare.v1.ListCarersRequest\x1a!.fostercare.v1.ListCarersResponse\x12]\n" +
	"\x0eSetCarerStatus\x12$.fostercare.v1.SetCarerStatusRequest\x1a%.fostercare.v1.SetCarerStatusResponse2\xe4\x03\n" +
	"\x10ReferralsService\x12]\n" +
	"\x0eCreateReferral\x12$.fostercare.v1.CreateReferralRequest\x1a%.fostercare.v1.CreateReferralResponse\x12T\n" +
	"\vGetReferral\x12!.fostercare.v1.GetReferralRequest\x1a\".fostercare.v1.GetReferralResponse\x12Z\n" +
	"\rListReferrals\x12#.fostercare.v1.ListReferralsRequest\x1a$.fostercare.v1.ListReferralsResponse\x12i\n" +
	"\x12TransitionReferral\x12(.fostercare.v1.TransitionReferralRequest\x1a).fostercare.v1.TransitionReferralResponse\x12T\n" +
	"\vAssignCarer\x12!.fostercare.v1.AssignCarerRequest\x1a\".fostercare.v1.AssignCarerResponse2\xcf\x01\n" +
	"\x0fMatchingService\x12Z\n" +
	"\rMatchReferral\x12#.fostercare.v1.MatchReferralRequest\x1a$.fostercare.v1.MatchReferralResponse\x12`\n" +
	"\x0fPreviewMatching\x12%.fostercare.v1.PreviewMatchingRequest\x1a&.fostercare.v1.PreviewMatchingResponse2\xcd\x01\n" +
	"\rExportService\x12Z\n" +
	"\rExportMatches\x12#.fostercare.v1.ExportMatchesRequest\x1a$.fostercare.v1.ExportMatchesResponse\x12`\n" +
	"\x0fExportReferrals\x12%.fostercare.v1.ExportReferralsRequest\x1a&.fostercare.v1.ExportReferralsResponseBIZGgithub.com/careflow-uk/fostermatch/gen/proto/fostercare/v1;fostercarev1b\x06proto3"

var (
	file_fostercare_v1_fostercare_proto_rawDescOnce sync.Once
	file_fostercare_v1_fostercare_proto_rawDescData []byte
)

func file_fostercare_v1_fostercare_proto_rawDescGZIP() []byte {
	file_fostercare_v1_fostercare_proto_rawDescOnce.Do(func() {
		file_fostercare_v1_fostercare_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_fostercare_v1_fostercare_proto_rawDesc), len(file_fostercare_v1_fostercare_proto_rawDesc)))
	})
	return file_fostercare_v1_fostercare_proto_rawDescData
}

var file_fostercare_v1_fostercare_proto_msgTypes = make([]protoimpl.MessageInfo, 36)
var file_fostercare_v1_fostercare_proto_goTypes = []any{
	(*Carer)(nil),                      // 0: fostercare.v1.Carer
	(*Referral)(nil),                   // 1: fostercare.v1.Referral
	(*MatchDetail)(nil),                // 2: fostercare.v1.MatchDetail
	(*MatchedCarer)(nil),               // 3: fostercare.v1.MatchedCarer
	(*MatchingResult)(nil),             // 4: fostercare.v1.MatchingResult
	(*StatusChange)(nil),               // 5: fostercare.v1.StatusChange
	(*CreateCarerRequest)(nil),         // 6: fostercare.v1.CreateCarerRequest
	(*CreateCarerResponse)(nil),        // 7: fostercare.v1.CreateCarerResponse
	(*UpdateCarerRequest)(nil),         // 8: fostercare.v1.UpdateCarerRequest
	(*UpdateCarerResponse)(nil),        // 9: fostercare.v1.UpdateCarerResponse
	(*GetCarerRequest)(nil),            // 10: fostercare.v1.GetCarerRequest
	(*GetCarerResponse)(nil),           // 11: fostercare.v1.GetCarerResponse
	(*ListCarersRequest)(nil),          // 12: fostercare.v1.ListCarersRequest
	(*ListCarersResponse)(nil),         // 13: fostercare.v1.ListCarersResponse
	(*SetCarerStatusRequest)(nil),      // 14: fostercare.v1.SetCarerStatusRequest
	(*SetCarerStatusResponse)(nil),     // 15: fostercare.v1.SetCarerStatusResponse
	(*CreateReferralRequest)(nil),      // 16: fostercare.v1.CreateReferralRequest
	(*CreateReferralResponse)(nil),     // 17: fostercare.v1.CreateReferralResponse
	(*GetReferralRequest)(nil),         // 18: fostercare.v1.GetReferralRequest
	(*GetReferralResponse)(nil),        // 19: fostercare.v1.GetReferralResponse
	(*ListReferralsRequest)(nil),       // 20: fostercare.v1.ListReferralsRequest
	(*ListReferralsResponse)(nil),      // 21: fostercare.v1.ListReferralsResponse
	(*TransitionReferralRequest)(nil),  // 22: fostercare.v1.TransitionReferralRequest
	(*TransitionReferralResponse)(nil), // 23: fostercare.v1.TransitionReferralResponse
	(*AssignCarerRequest)(nil),         // 24: fostercare.v1.AssignCarerRequest
	(*AssignCarerResponse)(nil),        // 25: fostercare.v1.AssignCarerResponse
	(*MatchReferralRequest)(nil),       // 26: fostercare.v1.MatchReferralRequest
	(*MatchReferralResponse)(nil),      // 27: fostercare.v1.MatchReferralResponse
	(*CriterionWeight)(nil),            // 28: fostercare.v1.CriterionWeight
	(*CriteriaOverride)(nil),           // 29: fostercare.v1.CriteriaOverride
	(*PreviewMatchingRequest)(nil),     // 30: fostercare.v1.PreviewMatchingRequest
	(*PreviewMatchingResponse)(nil),    // 31: fostercare.v1.PreviewMatchingResponse
	(*ExportMatchesRequest)(nil),       // 32: fostercare.v1.ExportMatchesRequest
	(*ExportMatchesResponse)(nil),      // 33: fostercare.v1.ExportMatchesResponse
	(*ExportReferralsRequest)(nil),     // 34: fostercare.v1.ExportReferralsRequest
	(*ExportReferralsResponse)(nil),    // 35: fostercare.v1.ExportReferralsResponse
}
var file_fostercare_v1_fostercare_proto_depIdxs = []int32{
	3,  // 0: fostercare.v1.Referral.matched_carers:type_name -> fostercare.v1.MatchedCarer
	5,  // 1: fostercare.v1.Referral.status_history:type_name -> fostercare.v1.StatusChange
	2,  // 2: fostercare.v1.MatchedCarer.match_details:type_name -> fostercare.v1.MatchDetail
	2,  // 3: fostercare.v1.MatchingResult.match_details:type_name -> fostercare.v1.MatchDetail
	0,  // 4: fostercare.v1.CreateCarerResponse.carer:type_name -> fostercare.v1.Carer
	0,  // 5: fostercare.v1.UpdateCarerResponse.carer:type_name -> fostercare.v1.Carer
	0,  // 6: fostercare.v1.GetCarerResponse.carer:type_name -> fostercare.v1.Carer
	0,  // 7: fostercare.v1.ListCarersResponse.carers:type_name -> fostercare.v1.Carer
	0,  // 8: fostercare.v1.SetCarerStatusResponse.carer:type_name -> fostercare.v1.Carer
	1,  // 9: fostercare.v1.CreateReferralResponse.referral:type_name -> fostercare.v1.Referral
	1,  // 10: fostercare.v1.GetReferralResponse.referral:type_name -> fostercare.v1.Referral
	1,  // 11: fostercare.v1.ListReferralsResponse.referrals:type_name -> fostercare.v1.Referral
	1,  // 12: fostercare.v1.TransitionReferralResponse.referral:type_name -> fostercare.v1.Referral
	1,  // 13: fostercare.v1.AssignCarerResponse.referral:type_name -> fostercare.v1.Referral
	1,  // 14: fostercare.v1.MatchReferralResponse.referral:type_name -> fostercare.v1.Referral
	28, // 15: fostercare.v1.CriteriaOverride.age_range:type_name -> fostercare.v1.CriterionWeight
	28, // 16: fostercare.v1.CriteriaOverride.siblings:type_name -> fostercare.v1.CriterionWeight
	28, // 17: fostercare.v1.CriteriaOverride.behavioural:type_name -> fostercare.v1.CriterionWeight
	28, // 18: fostercare.v1.CriteriaOverride.location:type_name -> fostercare.v1.CriterionWeight
	28, // 19: fostercare.v1.CriteriaOverride.sen:type_name -> fostercare.v1.CriterionWeight
	28, // 20: fostercare.v1.CriteriaOverride.pets:type_name -> fostercare.v1.CriterionWeight
	28, // 21: fostercare.v1.CriteriaOverride.capacity:type_name -> fostercare.v1.CriterionWeight
	29, // 22: fostercare.v1.PreviewMatchingRequest.criteria:type_name -> fostercare.v1.CriteriaOverride
	4,  // 23: fostercare.v1.PreviewMatchingResponse.results:type_name -> fostercare.v1.MatchingResult
	6,  // 24: fostercare.v1.CarersService.CreateCarer:input_type -> fostercare.v1.CreateCarerRequest
	8,  // 25: fostercare.v1.CarersService.UpdateCarer:input_type -> fostercare.v1.UpdateCarerRequest
	10, // 26: fostercare.v1.CarersService.GetCarer:input_type -> fostercare.v1.GetCarerRequest
	12, // 27: fostercare.v1.CarersService.ListCarers:input_type -> fostercare.v1.ListCarersRequest
	14, // 28: fostercare.v1.CarersService.SetCarerStatus:input_type -> fostercare.v1.SetCarerStatusRequest
	16, // 29: fostercare.v1.ReferralsService.CreateReferral:input_type -> fostercare.v1.CreateReferralRequest
	18, // 30: fostercare.v1.ReferralsService.GetReferral:input_type -> fostercare.v1.GetReferralRequest
	20, // 31: fostercare.v1.ReferralsService.ListReferrals:input_type -> fostercare.v1.ListReferralsRequest
	22, // 32: fostercare.v1.ReferralsService.TransitionReferral:input_type -> fostercare.v1.TransitionReferralRequest
	24, // 33: fostercare.v1.ReferralsService.AssignCarer:input_type -> fostercare.v1.AssignCarerRequest
	26, // 34: fostercare.v1.MatchingService.MatchReferral:input_type -> fostercare.v1.MatchReferralRequest
	30, // 35: fostercare.v1.MatchingService.PreviewMatching:input_type -> fostercare.v1.PreviewMatchingRequest
	32, // 36: fostercare.v1.ExportService.ExportMatches:input_type -> fostercare.v1.ExportMatchesRequest
	34, // 37: fostercare.v1.ExportService.ExportReferrals:input_type -> fostercare.v1.ExportReferralsRequest
	7,  // 38: fostercare.v1.CarersService.CreateCarer:output_type -> fostercare.v1.CreateCarerResponse
	9,  // 39: fostercare.v1.CarersService.UpdateCarer:output_type -> fostercare.v1.UpdateCarerResponse
	11, // 40: fostercare.v1.CarersService.GetCarer:output_type -> fostercare.v1.GetCarerResponse
	13, // 41: fostercare.v1.CarersService.ListCarers:output_type -> fostercare.v1.ListCarersResponse
	15, // 42: fostercare.v1.CarersService.SetCarerStatus:output_type -> fostercare.v1.SetCarerStatusResponse
	17, // 43: fostercare.v1.ReferralsService.CreateReferral:output_type -> fostercare.v1.CreateReferralResponse
	19, // 44: fostercare.v1.ReferralsService.GetReferral:output_type -> fostercare.v1.GetReferralResponse
	21, // 45: fostercare.v1.ReferralsService.ListReferrals:output_type -> fostercare.v1.ListReferralsResponse
	23, // 46: fostercare.v1.ReferralsService.TransitionReferral:output_type -> fostercare.v1.TransitionReferralResponse
	25, // 47: fostercare.v1.ReferralsService.AssignCarer:output_type -> fostercare.v1.AssignCarerResponse
	27, // 48: fostercare.v1.MatchingService.MatchReferral:output_type -> fostercare.v1.MatchReferralResponse
	31, // 49: fostercare.v1.MatchingService.PreviewMatching:output_type -> fostercare.v1.PreviewMatchingResponse
	33, // 50: fostercare.v1.ExportService.ExportMatches:output_type -> fostercare.v1.ExportMatchesResponse
	35, // 51: fostercare.v1.ExportService.ExportReferrals:output_type -> fostercare.v1.ExportReferralsResponse
	38, // [38:52] is the sub-list for method output_type
	24, // [24:38] is the sub-list for method input_type
	24, // [24:24] is the sub-list for extension type_name
	24, // [24:24] is the sub-list for extension extendee
	0,  // [0:24] is the sub-list for field type_name
}

func init() { file_fostercare_v1_fostercare_proto_init() }
func file_fostercare_v1_fostercare_proto_init() {
	if File_fostercare_v1_fostercare_proto != nil {
		return
	}
	file_fostercare_v1_fostercare_proto_msgTypes[8].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_fostercare_v1_fostercare_proto_rawDesc), len(file_fostercare_v1_fostercare_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   36,
			NumExtensions: 0,
			NumServices:   4,
		},
		GoTypes:           file_fostercare_v1_fostercare_proto_goTypes,
		DependencyIndexes: file_fostercare_v1_fostercare_proto_depIdxs,
		MessageInfos:      file_fostercare_v1_fostercare_proto_msgTypes,
	}.Build()
	File_fostercare_v1_fostercare_proto = out.File
	file_fostercare_v1_fostercare_proto_goTypes = nil
	file_fostercare_v1_fostercare_proto_depIdxs = nil
}
