// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.5
// 	protoc        (unknown)
// source: duel/v1/duel.proto

package duelv1

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

type PairingState int32

const (
	PairingState_PAIRING_STATE_UNSPECIFIED  PairingState = 0
	PairingState_PAIRING_STATE_SEARCHING    PairingState = 1
	PairingState_PAIRING_STATE_RATE_LIMITED PairingState = 2
	PairingState_PAIRING_STATE_MATCHED      PairingState = 3
	PairingState_PAIRING_STATE_CANCELED     PairingState = 4
)

// Enum value maps for PairingState.
var (
	PairingState_name = map[int32]string{
		0: "PAIRING_STATE_UNSPECIFIED",
		1: "PAIRING_STATE_SEARCHING",
		2: "PAIRING_STATE_RATE_LIMITED",
		3: "PAIRING_STATE_MATCHED",
		4: "PAIRING_STATE_CANCELED",
	}
	PairingState_value = map[string]int32{
		"PAIRING_STATE_UNSPECIFIED":  0,
		"PAIRING_STATE_SEARCHING":    1,
		"PAIRING_STATE_RATE_LIMITED": 2,
		"PAIRING_STATE_MATCHED":      3,
		"PAIRING_STATE_CANCELED":     4,
	}
)

func (x PairingState) Enum() *PairingState {
	p := new(PairingState)
	*p = x
	return p
}

func (x PairingState) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (PairingState) Descriptor() protoreflect.EnumDescriptor {
	return file_duel_v1_duel_proto_enumTypes[0].Descriptor()
}

func (PairingState) Type() protoreflect.EnumType {
	return &file_duel_v1_duel_proto_enumTypes[0]
}

func (x PairingState) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use PairingState.Descriptor instead.
func (PairingState) EnumDescriptor() ([]byte, []int) {
	return file_duel_v1_duel_proto_rawDescGZIP(), []int{0}
}

// GameResult is always viewer-relative: USER means the viewing player won.
type GameResult int32

const (
	GameResult_GAME_RESULT_UNSPECIFIED GameResult = 0
	GameResult_GAME_RESULT_PENDING     GameResult = 1
	GameResult_GAME_RESULT_USER        GameResult = 2
	GameResult_GAME_RESULT_CHALLENGER  GameResult = 3
	GameResult_GAME_RESULT_DRAW        GameResult = 4
)

// Enum value maps for GameResult.
var (
	GameResult_name = map[int32]string{
		0: "GAME_RESULT_UNSPECIFIED",
		1: "GAME_RESULT_PENDING",
		2: "GAME_RESULT_USER",
		3: "GAME_RESULT_CHALLENGER",
		4: "GAME_RESULT_DRAW",
	}
	GameResult_value = map[string]int32{
		"GAME_RESULT_UNSPECIFIED": 0,
		"GAME_RESULT_PENDING":     1,
		"GAME_RESULT_USER":        2,
		"GAME_RESULT_CHALLENGER":  3,
		"GAME_RESULT_DRAW":        4,
	}
)

func (x GameResult) Enum() *GameResult {
	p := new(GameResult)
	*p = x
	return p
}

func (x GameResult) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (GameResult) Descriptor() protoreflect.EnumDescriptor {
	return file_duel_v1_duel_proto_enumTypes[1].Descriptor()
}

func (GameResult) Type() protoreflect.EnumType {
	return &file_duel_v1_duel_proto_enumTypes[1]
}

func (x GameResult) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use GameResult.Descriptor instead.
func (GameResult) EnumDescriptor() ([]byte, []int) {
	return file_duel_v1_duel_proto_rawDescGZIP(), []int{1}
}

type CreatePairingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Username      string                 `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreatePairingRequest) Reset() {
	*x = CreatePairingRequest{}
	mi := &file_duel_v1_duel_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreatePairingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreatePairingRequest) ProtoMessage() {}

func (x *CreatePairingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_duel_v1_duel_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreatePairingRequest.ProtoReflect.Descriptor instead.
func (*CreatePairingRequest) Descriptor() ([]byte, []int) {
	return file_duel_v1_duel_proto_rawDescGZIP(), []int{0}
}

func (x *CreatePairingRequest) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

type CreatePairingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Token         string                 `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreatePairingResponse) Reset() {
	*x = CreatePairingResponse{}
	mi := &file_duel_v1_duel_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreatePairingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreatePairingResponse) ProtoMessage() {}

func (x *CreatePairingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_duel_v1_duel_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreatePairingResponse.ProtoReflect.Descriptor instead.
func (*CreatePairingResponse) Descriptor() ([]byte, []int) {
	return file_duel_v1_duel_proto_rawDescGZIP(), []int{1}
}

func (x *CreatePairingResponse) GetToken() string {
	if x != nil {
		return x.Token
	}
	return ""
}

type JoinPairingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Username      string                 `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Token         string                 `protobuf:"bytes,2,opt,name=token,proto3" json:"token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JoinPairingRequest) Reset() {
	*x = JoinPairingRequest{}
	mi := &file_duel_v1_duel_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JoinPairingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JoinPairingRequest) ProtoMessage() {}

func (x *JoinPairingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_duel_v1_duel_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JoinPairingRequest.ProtoReflect.Descriptor instead.
func (*JoinPairingRequest) Descriptor() ([]byte, []int) {
	return file_duel_v1_duel_proto_rawDescGZIP(), []int{2}
}

func (x *JoinPairingRequest) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *JoinPairingRequest) GetToken() string {
	if x != nil {
		return x.Token
	}
	return ""
}

type JoinPairingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JoinPairingResponse) Reset() {
	*x = JoinPairingResponse{}
	mi := &file_duel_v1_duel_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JoinPairingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JoinPairingResponse) ProtoMessage() {}

func (x *JoinPairingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_duel_v1_duel_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JoinPairingResponse.ProtoReflect.Descriptor instead.
func (*JoinPairingResponse) Descriptor() ([]byte, []int) {
	return file_duel_v1_duel_proto_rawDescGZIP(), []int{3}
}

type PairingStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Username      string                 `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	IsMaster      bool                   `protobuf:"varint,2,opt,name=is_master,json=isMaster,proto3" json:"is_master,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PairingStatusRequest) Reset() {
	*x = PairingStatusRequest{}
	mi := &file_duel_v1_duel_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PairingStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PairingStatusRequest) ProtoMessage() {}

func (x *PairingStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_duel_v1_duel_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PairingStatusRequest.ProtoReflect.Descriptor instead.
func (*PairingStatusRequest) Descriptor() ([]byte, []int) {
	return file_duel_v1_duel_proto_rawDescGZIP(), []int{4}
}

func (x *PairingStatusRequest) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *PairingStatusRequest) GetIsMaster() bool {
	if x != nil {
		return x.IsMaster
	}
	return false
}

type PairingStatusUpdate struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	State         PairingState           `protobuf:"varint,1,opt,name=state,proto3,enum=duel.v1.PairingState" json:"state,omitempty"`
	MatchId       string                 `protobuf:"bytes,2,opt,name=match_id,json=matchId,proto3" json:"match_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PairingStatusUpdate) Reset() {
	*x = PairingStatusUpdate{}
	mi := &file_duel_v1_duel_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PairingStatusUpdate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PairingStatusUpdate) ProtoMessage() {}

func (x *PairingStatusUpdate) ProtoReflect() protoreflect.Message {
	mi := &file_duel_v1_duel_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PairingStatusUpdate.ProtoReflect.Descriptor instead.
func (*PairingStatusUpdate) Descriptor() ([]byte, []int) {
	return file_duel_v1_duel_proto_rawDescGZIP(), []int{5}
}

func (x *PairingStatusUpdate) GetState() PairingState {
	if x != nil {
		return x.State
	}
	return PairingState_PAIRING_STATE_UNSPECIFIED
}

func (x *PairingStatusUpdate) GetMatchId() string {
	if x != nil {
		return x.MatchId
	}
	return ""
}

type GameStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MatchId       string                 `protobuf:"bytes,1,opt,name=match_id,json=matchId,proto3" json:"match_id,omitempty"`
	Username      string                 `protobuf:"bytes,2,opt,name=username,proto3" json:"username,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GameStatusRequest) Reset() {
	*x = GameStatusRequest{}
	mi := &file_duel_v1_duel_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GameStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GameStatusRequest) ProtoMessage() {}

func (x *GameStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_duel_v1_duel_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GameStatusRequest.ProtoReflect.Descriptor instead.
func (*GameStatusRequest) Descriptor() ([]byte, []int) {
	return file_duel_v1_duel_proto_rawDescGZIP(), []int{6}
}

func (x *GameStatusRequest) GetMatchId() string {
	if x != nil {
		return x.MatchId
	}
	return ""
}

func (x *GameStatusRequest) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

type GameStatusUpdate struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	User           string                 `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	UserPick       string                 `protobuf:"bytes,2,opt,name=user_pick,json=userPick,proto3" json:"user_pick,omitempty"`
	Challenger     string                 `protobuf:"bytes,3,opt,name=challenger,proto3" json:"challenger,omitempty"`
	ChallengerPick string                 `protobuf:"bytes,4,opt,name=challenger_pick,json=challengerPick,proto3" json:"challenger_pick,omitempty"`
	Result         GameResult             `protobuf:"varint,5,opt,name=result,proto3,enum=duel.v1.GameResult" json:"result,omitempty"`
	IsMaster       bool                   `protobuf:"varint,6,opt,name=is_master,json=isMaster,proto3" json:"is_master,omitempty"`
	IsCancelled    bool                   `protobuf:"varint,7,opt,name=is_cancelled,json=isCancelled,proto3" json:"is_cancelled,omitempty"`
	IsFinished     bool                   `protobuf:"varint,8,opt,name=is_finished,json=isFinished,proto3" json:"is_finished,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *GameStatusUpdate) Reset() {
	*x = GameStatusUpdate{}
	mi := &file_duel_v1_duel_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GameStatusUpdate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GameStatusUpdate) ProtoMessage() {}

func (x *GameStatusUpdate) ProtoReflect() protoreflect.Message {
	mi := &file_duel_v1_duel_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GameStatusUpdate.ProtoReflect.Descriptor instead.
func (*GameStatusUpdate) Descriptor() ([]byte, []int) {
	return file_duel_v1_duel_proto_rawDescGZIP(), []int{7}
}

func (x *GameStatusUpdate) GetUser() string {
	if x != nil {
		return x.User
	}
	return ""
}

func (x *GameStatusUpdate) GetUserPick() string {
	if x != nil {
		return x.UserPick
	}
	return ""
}

func (x *GameStatusUpdate) GetChallenger() string {
	if x != nil {
		return x.Challenger
	}
	return ""
}

func (x *GameStatusUpdate) GetChallengerPick() string {
	if x != nil {
		return x.ChallengerPick
	}
	return ""
}

func (x *GameStatusUpdate) GetResult() GameResult {
	if x != nil {
		return x.Result
	}
	return GameResult_GAME_RESULT_UNSPECIFIED
}

func (x *GameStatusUpdate) GetIsMaster() bool {
	if x != nil {
		return x.IsMaster
	}
	return false
}

func (x *GameStatusUpdate) GetIsCancelled() bool {
	if x != nil {
		return x.IsCancelled
	}
	return false
}

func (x *GameStatusUpdate) GetIsFinished() bool {
	if x != nil {
		return x.IsFinished
	}
	return false
}

type PickRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MatchId       string                 `protobuf:"bytes,1,opt,name=match_id,json=matchId,proto3" json:"match_id,omitempty"`
	Username      string                 `protobuf:"bytes,2,opt,name=username,proto3" json:"username,omitempty"`
	Pick          string                 `protobuf:"bytes,3,opt,name=pick,proto3" json:"pick,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PickRequest) Reset() {
	*x = PickRequest{}
	mi := &file_duel_v1_duel_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PickRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PickRequest) ProtoMessage() {}

func (x *PickRequest) ProtoReflect() protoreflect.Message {
	mi := &file_duel_v1_duel_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PickRequest.ProtoReflect.Descriptor instead.
func (*PickRequest) Descriptor() ([]byte, []int) {
	return file_duel_v1_duel_proto_rawDescGZIP(), []int{8}
}

func (x *PickRequest) GetMatchId() string {
	if x != nil {
		return x.MatchId
	}
	return ""
}

func (x *PickRequest) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *PickRequest) GetPick() string {
	if x != nil {
		return x.Pick
	}
	return ""
}

type PickResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PickResponse) Reset() {
	*x = PickResponse{}
	mi := &file_duel_v1_duel_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PickResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PickResponse) ProtoMessage() {}

func (x *PickResponse) ProtoReflect() protoreflect.Message {
	mi := &file_duel_v1_duel_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PickResponse.ProtoReflect.Descriptor instead.
func (*PickResponse) Descriptor() ([]byte, []int) {
	return file_duel_v1_duel_proto_rawDescGZIP(), []int{9}
}

var File_duel_v1_duel_proto protoreflect.FileDescriptor

var file_duel_v1_duel_proto_rawDesc = string([]byte{
	0x0a, 0x12, 0x64, 0x75, 0x65, 0x6c, 0x2f, 0x76, 0x31, 0x2f, 0x64, 0x75, 0x65, 0x6c, 0x2e, 0x70,
	0x72, 0x6f, 0x74, 0x6f, 0x12, 0x07, 0x64, 0x75, 0x65, 0x6c, 0x2e, 0x76, 0x31, 0x22, 0x32, 0x0a,
	0x14, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x50, 0x61, 0x69, 0x72, 0x69, 0x6e, 0x67, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1a, 0x0a, 0x08, 0x75, 0x73, 0x65, 0x72, 0x6e, 0x61, 0x6d,
	0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x75, 0x73, 0x65, 0x72, 0x6e, 0x61, 0x6d,
	0x65, 0x22, 0x2d, 0x0a, 0x15, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x50, 0x61, 0x69, 0x72, 0x69,
	0x6e, 0x67, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x14, 0x0a, 0x05, 0x74, 0x6f,
	0x6b, 0x65, 0x6e, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x74, 0x6f, 0x6b, 0x65, 0x6e,
	0x22, 0x46, 0x0a, 0x12, 0x4a, 0x6f, 0x69, 0x6e, 0x50, 0x61, 0x69, 0x72, 0x69, 0x6e, 0x67, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1a, 0x0a, 0x08, 0x75, 0x73, 0x65, 0x72, 0x6e, 0x61,
	0x6d, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x75, 0x73, 0x65, 0x72, 0x6e, 0x61,
	0x6d, 0x65, 0x12, 0x14, 0x0a, 0x05, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x18, 0x02, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x05, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x22, 0x15, 0x0a, 0x13, 0x4a, 0x6f, 0x69, 0x6e,
	0x50, 0x61, 0x69, 0x72, 0x69, 0x6e, 0x67, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22,
	0x4f, 0x0a, 0x14, 0x50, 0x61, 0x69, 0x72, 0x69, 0x6e, 0x67, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73,
	0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1a, 0x0a, 0x08, 0x75, 0x73, 0x65, 0x72, 0x6e,
	0x61, 0x6d, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x75, 0x73, 0x65, 0x72, 0x6e,
	0x61, 0x6d, 0x65, 0x12, 0x1b, 0x0a, 0x09, 0x69, 0x73, 0x5f, 0x6d, 0x61, 0x73, 0x74, 0x65, 0x72,
	0x18, 0x02, 0x20, 0x01, 0x28, 0x08, 0x52, 0x08, 0x69, 0x73, 0x4d, 0x61, 0x73, 0x74, 0x65, 0x72,
	0x22, 0x5d, 0x0a, 0x13, 0x50, 0x61, 0x69, 0x72, 0x69, 0x6e, 0x67, 0x53, 0x74, 0x61, 0x74, 0x75,
	0x73, 0x55, 0x70, 0x64, 0x61, 0x74, 0x65, 0x12, 0x2b, 0x0a, 0x05, 0x73, 0x74, 0x61, 0x74, 0x65,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x15, 0x2e, 0x64, 0x75, 0x65, 0x6c, 0x2e, 0x76, 0x31,
	0x2e, 0x50, 0x61, 0x69, 0x72, 0x69, 0x6e, 0x67, 0x53, 0x74, 0x61, 0x74, 0x65, 0x52, 0x05, 0x73,
	0x74, 0x61, 0x74, 0x65, 0x12, 0x19, 0x0a, 0x08, 0x6d, 0x61, 0x74, 0x63, 0x68, 0x5f, 0x69, 0x64,
	0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x6d, 0x61, 0x74, 0x63, 0x68, 0x49, 0x64, 0x22,
	0x4a, 0x0a, 0x11, 0x47, 0x61, 0x6d, 0x65, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x12, 0x19, 0x0a, 0x08, 0x6d, 0x61, 0x74, 0x63, 0x68, 0x5f, 0x69, 0x64,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x6d, 0x61, 0x74, 0x63, 0x68, 0x49, 0x64, 0x12,
	0x1a, 0x0a, 0x08, 0x75, 0x73, 0x65, 0x72, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x08, 0x75, 0x73, 0x65, 0x72, 0x6e, 0x61, 0x6d, 0x65, 0x22, 0x9a, 0x02, 0x0a, 0x10,
	0x47, 0x61, 0x6d, 0x65, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x55, 0x70, 0x64, 0x61, 0x74, 0x65,
	0x12, 0x12, 0x0a, 0x04, 0x75, 0x73, 0x65, 0x72, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04,
	0x75, 0x73, 0x65, 0x72, 0x12, 0x1b, 0x0a, 0x09, 0x75, 0x73, 0x65, 0x72, 0x5f, 0x70, 0x69, 0x63,
	0x6b, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x75, 0x73, 0x65, 0x72, 0x50, 0x69, 0x63,
	0x6b, 0x12, 0x1e, 0x0a, 0x0a, 0x63, 0x68, 0x61, 0x6c, 0x6c, 0x65, 0x6e, 0x67, 0x65, 0x72, 0x18,
	0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0a, 0x63, 0x68, 0x61, 0x6c, 0x6c, 0x65, 0x6e, 0x67, 0x65,
	0x72, 0x12, 0x27, 0x0a, 0x0f, 0x63, 0x68, 0x61, 0x6c, 0x6c, 0x65, 0x6e, 0x67, 0x65, 0x72, 0x5f,
	0x70, 0x69, 0x63, 0x6b, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0e, 0x63, 0x68, 0x61, 0x6c,
	0x6c, 0x65, 0x6e, 0x67, 0x65, 0x72, 0x50, 0x69, 0x63, 0x6b, 0x12, 0x2b, 0x0a, 0x06, 0x72, 0x65,
	0x73, 0x75, 0x6c, 0x74, 0x18, 0x05, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x13, 0x2e, 0x64, 0x75, 0x65,
	0x6c, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x61, 0x6d, 0x65, 0x52, 0x65, 0x73, 0x75, 0x6c, 0x74, 0x52,
	0x06, 0x72, 0x65, 0x73, 0x75, 0x6c, 0x74, 0x12, 0x1b, 0x0a, 0x09, 0x69, 0x73, 0x5f, 0x6d, 0x61,
	0x73, 0x74, 0x65, 0x72, 0x18, 0x06, 0x20, 0x01, 0x28, 0x08, 0x52, 0x08, 0x69, 0x73, 0x4d, 0x61,
	0x73, 0x74, 0x65, 0x72, 0x12, 0x21, 0x0a, 0x0c, 0x69, 0x73, 0x5f, 0x63, 0x61, 0x6e, 0x63, 0x65,
	0x6c, 0x6c, 0x65, 0x64, 0x18, 0x07, 0x20, 0x01, 0x28, 0x08, 0x52, 0x0b, 0x69, 0x73, 0x43, 0x61,
	0x6e, 0x63, 0x65, 0x6c, 0x6c, 0x65, 0x64, 0x12, 0x1f, 0x0a, 0x0b, 0x69, 0x73, 0x5f, 0x66, 0x69,
	0x6e, 0x69, 0x73, 0x68, 0x65, 0x64, 0x18, 0x08, 0x20, 0x01, 0x28, 0x08, 0x52, 0x0a, 0x69, 0x73,
	0x46, 0x69, 0x6e, 0x69, 0x73, 0x68, 0x65, 0x64, 0x22, 0x58, 0x0a, 0x0b, 0x50, 0x69, 0x63, 0x6b,
	0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x19, 0x0a, 0x08, 0x6d, 0x61, 0x74, 0x63, 0x68,
	0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x6d, 0x61, 0x74, 0x63, 0x68,
	0x49, 0x64, 0x12, 0x1a, 0x0a, 0x08, 0x75, 0x73, 0x65, 0x72, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x02,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x75, 0x73, 0x65, 0x72, 0x6e, 0x61, 0x6d, 0x65, 0x12, 0x12,
	0x0a, 0x04, 0x70, 0x69, 0x63, 0x6b, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x70, 0x69,
	0x63, 0x6b, 0x22, 0x0e, 0x0a, 0x0c, 0x50, 0x69, 0x63, 0x6b, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x2a, 0xa1, 0x01, 0x0a, 0x0c, 0x50, 0x61, 0x69, 0x72, 0x69, 0x6e, 0x67, 0x53, 0x74,
	0x61, 0x74, 0x65, 0x12, 0x1d, 0x0a, 0x19, 0x50, 0x41, 0x49, 0x52, 0x49, 0x4e, 0x47, 0x5f, 0x53,
	0x54, 0x41, 0x54, 0x45, 0x5f, 0x55, 0x4e, 0x53, 0x50, 0x45, 0x43, 0x49, 0x46, 0x49, 0x45, 0x44,
	0x10, 0x00, 0x12, 0x1b, 0x0a, 0x17, 0x50, 0x41, 0x49, 0x52, 0x49, 0x4e, 0x47, 0x5f, 0x53, 0x54,
	0x41, 0x54, 0x45, 0x5f, 0x53, 0x45, 0x41, 0x52, 0x43, 0x48, 0x49, 0x4e, 0x47, 0x10, 0x01, 0x12,
	0x1e, 0x0a, 0x1a, 0x50, 0x41, 0x49, 0x52, 0x49, 0x4e, 0x47, 0x5f, 0x53, 0x54, 0x41, 0x54, 0x45,
	0x5f, 0x52, 0x41, 0x54, 0x45, 0x5f, 0x4c, 0x49, 0x4d, 0x49, 0x54, 0x45, 0x44, 0x10, 0x02, 0x12,
	0x19, 0x0a, 0x15, 0x50, 0x41, 0x49, 0x52, 0x49, 0x4e, 0x47, 0x5f, 0x53, 0x54, 0x41, 0x54, 0x45,
	0x5f, 0x4d, 0x41, 0x54, 0x43, 0x48, 0x45, 0x44, 0x10, 0x03, 0x12, 0x1a, 0x0a, 0x16, 0x50, 0x41,
	0x49, 0x52, 0x49, 0x4e, 0x47, 0x5f, 0x53, 0x54, 0x41, 0x54, 0x45, 0x5f, 0x43, 0x41, 0x4e, 0x43,
	0x45, 0x4c, 0x45, 0x44, 0x10, 0x04, 0x2a, 0x8a, 0x01, 0x0a, 0x0a, 0x47, 0x61, 0x6d, 0x65, 0x52,
	0x65, 0x73, 0x75, 0x6c, 0x74, 0x12, 0x1b, 0x0a, 0x17, 0x47, 0x41, 0x4d, 0x45, 0x5f, 0x52, 0x45,
	0x53, 0x55, 0x4c, 0x54, 0x5f, 0x55, 0x4e, 0x53, 0x50, 0x45, 0x43, 0x49, 0x46, 0x49, 0x45, 0x44,
	0x10, 0x00, 0x12, 0x17, 0x0a, 0x13, 0x47, 0x41, 0x4d, 0x45, 0x5f, 0x52, 0x45, 0x53, 0x55, 0x4c,
	0x54, 0x5f, 0x50, 0x45, 0x4e, 0x44, 0x49, 0x4e, 0x47, 0x10, 0x01, 0x12, 0x14, 0x0a, 0x10, 0x47,
	0x41, 0x4d, 0x45, 0x5f, 0x52, 0x45, 0x53, 0x55, 0x4c, 0x54, 0x5f, 0x55, 0x53, 0x45, 0x52, 0x10,
	0x02, 0x12, 0x1a, 0x0a, 0x16, 0x47, 0x41, 0x4d, 0x45, 0x5f, 0x52, 0x45, 0x53, 0x55, 0x4c, 0x54,
	0x5f, 0x43, 0x48, 0x41, 0x4c, 0x4c, 0x45, 0x4e, 0x47, 0x45, 0x52, 0x10, 0x03, 0x12, 0x14, 0x0a,
	0x10, 0x47, 0x41, 0x4d, 0x45, 0x5f, 0x52, 0x45, 0x53, 0x55, 0x4c, 0x54, 0x5f, 0x44, 0x52, 0x41,
	0x57, 0x10, 0x04, 0x32, 0xf3, 0x02, 0x0a, 0x0b, 0x44, 0x75, 0x65, 0x6c, 0x53, 0x65, 0x72, 0x76,
	0x69, 0x63, 0x65, 0x12, 0x4e, 0x0a, 0x0d, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x50, 0x61, 0x69,
	0x72, 0x69, 0x6e, 0x67, 0x12, 0x1d, 0x2e, 0x64, 0x75, 0x65, 0x6c, 0x2e, 0x76, 0x31, 0x2e, 0x43,
	0x72, 0x65, 0x61, 0x74, 0x65, 0x50, 0x61, 0x69, 0x72, 0x69, 0x6e, 0x67, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x1a, 0x1e, 0x2e, 0x64, 0x75, 0x65, 0x6c, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x72,
	0x65, 0x61, 0x74, 0x65, 0x50, 0x61, 0x69, 0x72, 0x69, 0x6e, 0x67, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x12, 0x48, 0x0a, 0x0b, 0x4a, 0x6f, 0x69, 0x6e, 0x50, 0x61, 0x69, 0x72, 0x69,
	0x6e, 0x67, 0x12, 0x1b, 0x2e, 0x64, 0x75, 0x65, 0x6c, 0x2e, 0x76, 0x31, 0x2e, 0x4a, 0x6f, 0x69,
	0x6e, 0x50, 0x61, 0x69, 0x72, 0x69, 0x6e, 0x67, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a,
	0x1c, 0x2e, 0x64, 0x75, 0x65, 0x6c, 0x2e, 0x76, 0x31, 0x2e, 0x4a, 0x6f, 0x69, 0x6e, 0x50, 0x61,
	0x69, 0x72, 0x69, 0x6e, 0x67, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x4e, 0x0a,
	0x0d, 0x50, 0x61, 0x69, 0x72, 0x69, 0x6e, 0x67, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x12, 0x1d,
	0x2e, 0x64, 0x75, 0x65, 0x6c, 0x2e, 0x76, 0x31, 0x2e, 0x50, 0x61, 0x69, 0x72, 0x69, 0x6e, 0x67,
	0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1c, 0x2e,
	0x64, 0x75, 0x65, 0x6c, 0x2e, 0x76, 0x31, 0x2e, 0x50, 0x61, 0x69, 0x72, 0x69, 0x6e, 0x67, 0x53,
	0x74, 0x61, 0x74, 0x75, 0x73, 0x55, 0x70, 0x64, 0x61, 0x74, 0x65, 0x30, 0x01, 0x12, 0x45, 0x0a,
	0x0a, 0x47, 0x61, 0x6d, 0x65, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x12, 0x1a, 0x2e, 0x64, 0x75,
	0x65, 0x6c, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x61, 0x6d, 0x65, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73,
	0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x19, 0x2e, 0x64, 0x75, 0x65, 0x6c, 0x2e, 0x76,
	0x31, 0x2e, 0x47, 0x61, 0x6d, 0x65, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x55, 0x70, 0x64, 0x61,
	0x74, 0x65, 0x30, 0x01, 0x12, 0x33, 0x0a, 0x04, 0x50, 0x69, 0x63, 0x6b, 0x12, 0x14, 0x2e, 0x64,
	0x75, 0x65, 0x6c, 0x2e, 0x76, 0x31, 0x2e, 0x50, 0x69, 0x63, 0x6b, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x1a, 0x15, 0x2e, 0x64, 0x75, 0x65, 0x6c, 0x2e, 0x76, 0x31, 0x2e, 0x50, 0x69, 0x63,
	0x6b, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x42, 0x35, 0x5a, 0x33, 0x67, 0x69, 0x74,
	0x68, 0x75, 0x62, 0x2e, 0x63, 0x6f, 0x6d, 0x2f, 0x6f, 0x70, 0x65, 0x6e, 0x64, 0x75, 0x65, 0x6c,
	0x2f, 0x61, 0x72, 0x65, 0x6e, 0x61, 0x2f, 0x61, 0x70, 0x69, 0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x67,
	0x6f, 0x2f, 0x64, 0x75, 0x65, 0x6c, 0x2f, 0x76, 0x31, 0x3b, 0x64, 0x75, 0x65, 0x6c, 0x76, 0x31,
	0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
})

var (
	file_duel_v1_duel_proto_rawDescOnce sync.Once
	file_duel_v1_duel_proto_rawDescData []byte
)

func file_duel_v1_duel_proto_rawDescGZIP() []byte {
	file_duel_v1_duel_proto_rawDescOnce.Do(func() {
		file_duel_v1_duel_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_duel_v1_duel_proto_rawDesc), len(file_duel_v1_duel_proto_rawDesc)))
	})
	return file_duel_v1_duel_proto_rawDescData
}

var file_duel_v1_duel_proto_enumTypes = make([]protoimpl.EnumInfo, 2)
var file_duel_v1_duel_proto_msgTypes = make([]protoimpl.MessageInfo, 10)
var file_duel_v1_duel_proto_goTypes = []any{
	(PairingState)(0),             // 0: duel.v1.PairingState
	(GameResult)(0),               // 1: duel.v1.GameResult
	(*CreatePairingRequest)(nil),  // 2: duel.v1.CreatePairingRequest
	(*CreatePairingResponse)(nil), // 3: duel.v1.CreatePairingResponse
	(*JoinPairingRequest)(nil),    // 4: duel.v1.JoinPairingRequest
	(*JoinPairingResponse)(nil),   // 5: duel.v1.JoinPairingResponse
	(*PairingStatusRequest)(nil),  // 6: duel.v1.PairingStatusRequest
	(*PairingStatusUpdate)(nil),   // 7: duel.v1.PairingStatusUpdate
	(*GameStatusRequest)(nil),     // 8: duel.v1.GameStatusRequest
	(*GameStatusUpdate)(nil),      // 9: duel.v1.GameStatusUpdate
	(*PickRequest)(nil),           // 10: duel.v1.PickRequest
	(*PickResponse)(nil),          // 11: duel.v1.PickResponse
}
var file_duel_v1_duel_proto_depIdxs = []int32{
	0,  // 0: duel.v1.PairingStatusUpdate.state:type_name -> duel.v1.PairingState
	1,  // 1: duel.v1.GameStatusUpdate.result:type_name -> duel.v1.GameResult
	2,  // 2: duel.v1.DuelService.CreatePairing:input_type -> duel.v1.CreatePairingRequest
	4,  // 3: duel.v1.DuelService.JoinPairing:input_type -> duel.v1.JoinPairingRequest
	6,  // 4: duel.v1.DuelService.PairingStatus:input_type -> duel.v1.PairingStatusRequest
	8,  // 5: duel.v1.DuelService.GameStatus:input_type -> duel.v1.GameStatusRequest
	10, // 6: duel.v1.DuelService.Pick:input_type -> duel.v1.PickRequest
	3,  // 7: duel.v1.DuelService.CreatePairing:output_type -> duel.v1.CreatePairingResponse
	5,  // 8: duel.v1.DuelService.JoinPairing:output_type -> duel.v1.JoinPairingResponse
	7,  // 9: duel.v1.DuelService.PairingStatus:output_type -> duel.v1.PairingStatusUpdate
	9,  // 10: duel.v1.DuelService.GameStatus:output_type -> duel.v1.GameStatusUpdate
	11, // 11: duel.v1.DuelService.Pick:output_type -> duel.v1.PickResponse
	7,  // [7:12] is the sub-list for method output_type
	2,  // [2:7] is the sub-list for method input_type
	2,  // [2:2] is the sub-list for extension type_name
	2,  // [2:2] is the sub-list for extension extendee
	0,  // [0:2] is the sub-list for field type_name
}

func init() { file_duel_v1_duel_proto_init() }
func file_duel_v1_duel_proto_init() {
	if File_duel_v1_duel_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_duel_v1_duel_proto_rawDesc), len(file_duel_v1_duel_proto_rawDesc)),
			NumEnums:      2,
			NumMessages:   10,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_duel_v1_duel_proto_goTypes,
		DependencyIndexes: file_duel_v1_duel_proto_depIdxs,
		EnumInfos:         file_duel_v1_duel_proto_enumTypes,
		MessageInfos:      file_duel_v1_duel_proto_msgTypes,
	}.Build()
	File_duel_v1_duel_proto = out.File
	file_duel_v1_duel_proto_goTypes = nil
	file_duel_v1_duel_proto_depIdxs = nil
}
