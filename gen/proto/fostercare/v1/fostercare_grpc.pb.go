// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: fostercare/v1/fostercare.proto

package fostercarev1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	CarersService_CreateCarer_FullMethodName    = "/fostercare.v1.CarersService/CreateCarer"
	CarersService_UpdateCarer_FullMethodName    = "/fostercare.v1.CarersService/UpdateCarer"
	CarersService_GetCarer_FullMethodName       = "/fostercare.v1.CarersService/GetCarer"
	CarersService_ListCarers_FullMethodName     = "/fostercare.v1.CarersService/ListCarers"
	CarersService_SetCarerStatus_FullMethodName = "/fostercare.v1.CarersService/SetCarerStatus"
)

// CarersServiceClient is the client API for CarersService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type CarersServiceClient interface {
	CreateCarer(ctx context.Context, in *CreateCarerRequest, opts ...grpc.CallOption) (*CreateCarerResponse, error)
	UpdateCarer(ctx context.Context, in *UpdateCarerRequest, opts ...grpc.CallOption) (*UpdateCarerResponse, error)
	GetCarer(ctx context.Context, in *GetCarerRequest, opts ...grpc.CallOption) (*GetCarerResponse, error)
	ListCarers(ctx context.Context, in *ListCarersRequest, opts ...grpc.CallOption) (*ListCarersResponse, error)
	SetCarerStatus(ctx context.Context, in *SetCarerStatusRequest, opts ...grpc.CallOption) (*SetCarerStatusResponse, error)
}

type carersServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCarersServiceClient(cc grpc.ClientConnInterface) CarersServiceClient {
	return &carersServiceClient{cc}
}

func (c *carersServiceClient) CreateCarer(ctx context.Context, in *CreateCarerRequest, opts ...grpc.CallOption) (*CreateCarerResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateCarerResponse)
	err := c.cc.Invoke(ctx, CarersService_CreateCarer_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *carersServiceClient) UpdateCarer(ctx context.Context, in *UpdateCarerRequest, opts ...grpc.CallOption) (*UpdateCarerResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateCarerResponse)
	err := c.cc.Invoke(ctx, CarersService_UpdateCarer_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *carersServiceClient) GetCarer(ctx context.Context, in *GetCarerRequest, opts ...grpc.CallOption) (*GetCarerResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetCarerResponse)
	err := c.cc.Invoke(ctx, CarersService_GetCarer_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *carersServiceClient) ListCarers(ctx context.Context, in *ListCarersRequest, opts ...grpc.CallOption) (*ListCarersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListCarersResponse)
	err := c.cc.Invoke(ctx, CarersService_ListCarers_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *carersServiceClient) SetCarerStatus(ctx context.Context, in *SetCarerStatusRequest, opts ...grpc.CallOption) (*SetCarerStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetCarerStatusResponse)
	err := c.cc.Invoke(ctx, CarersService_SetCarerStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CarersServiceServer is the server API for CarersService service.
// All implementations must embed UnimplementedCarersServiceServer
// for forward compatibility.
type CarersServiceServer interface {
	CreateCarer(context.Context, *CreateCarerRequest) (*CreateCarerResponse, error)
	UpdateCarer(context.Context, *UpdateCarerRequest) (*UpdateCarerResponse, error)
	GetCarer(context.Context, *GetCarerRequest) (*GetCarerResponse, error)
	ListCarers(context.Context, *ListCarersRequest) (*ListCarersResponse, error)
	SetCarerStatus(context.Context, *SetCarerStatusRequest) (*SetCarerStatusResponse, error)
	mustEmbedUnimplementedCarersServiceServer()
}

// UnimplementedCarersServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedCarersServiceServer struct{}

func (UnimplementedCarersServiceServer) CreateCarer(context.Context, *CreateCarerRequest) (*CreateCarerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateCarer not implemented")
}
func (UnimplementedCarersServiceServer) UpdateCarer(context.Context, *UpdateCarerRequest) (*UpdateCarerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateCarer not implemented")
}
func (UnimplementedCarersServiceServer) GetCarer(context.Context, *GetCarerRequest) (*GetCarerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCarer not implemented")
}
func (UnimplementedCarersServiceServer) ListCarers(context.Context, *ListCarersRequest) (*ListCarersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListCarers not implemented")
}
func (UnimplementedCarersServiceServer) SetCarerStatus(context.Context, *SetCarerStatusRequest) (*SetCarerStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetCarerStatus not implemented")
}
func (UnimplementedCarersServiceServer) mustEmbedUnimplementedCarersServiceServer() {}
func (UnimplementedCarersServiceServer) testEmbeddedByValue()                       {}

// UnsafeCarersServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to CarersServiceServer will
// result in compilation errors.
type UnsafeCarersServiceServer interface {
	mustEmbedUnimplementedCarersServiceServer()
}

func RegisterCarersServiceServer(s grpc.ServiceRegistrar, srv CarersServiceServer) {
	// If the following call pancis, it indicates UnimplementedCarersServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&CarersService_ServiceDesc, srv)
}

func _CarersService_CreateCarer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateCarerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CarersServiceServer).CreateCarer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CarersService_CreateCarer_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CarersServiceServer).CreateCarer(ctx, req.(*CreateCarerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CarersService_UpdateCarer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateCarerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CarersServiceServer).UpdateCarer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CarersService_UpdateCarer_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CarersServiceServer).UpdateCarer(ctx, req.(*UpdateCarerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CarersService_GetCarer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCarerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CarersServiceServer).GetCarer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CarersService_GetCarer_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CarersServiceServer).GetCarer(ctx, req.(*GetCarerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CarersService_ListCarers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListCarersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CarersServiceServer).ListCarers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CarersService_ListCarers_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CarersServiceServer).ListCarers(ctx, req.(*ListCarersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CarersService_SetCarerStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetCarerStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CarersServiceServer).SetCarerStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CarersService_SetCarerStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CarersServiceServer).SetCarerStatus(ctx, req.(*SetCarerStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CarersService_ServiceDesc is the grpc.ServiceDesc for CarersService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var CarersService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "fostercare.v1.CarersService",
	HandlerType: (*CarersServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateCarer",
			Handler:    _CarersService_CreateCarer_Handler,
		},
		{
			MethodName: "UpdateCarer",
			Handler:    _CarersService_UpdateCarer_Handler,
		},
		{
			MethodName: "GetCarer",
			Handler:    _CarersService_GetCarer_Handler,
		},
		{
			MethodName: "ListCarers",
			Handler:    _CarersService_ListCarers_Handler,
		},
		{
			MethodName: "SetCarerStatus",
			Handler:    _CarersService_SetCarerStatus_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "fostercare/v1/fostercare.proto",
}

const (
	ReferralsService_CreateReferral_FullMethodName     = "/fostercare.v1.ReferralsService/CreateReferral"
	ReferralsService_GetReferral_FullMethodName        = "/fostercare.v1.ReferralsService/GetReferral"
	ReferralsService_ListReferrals_FullMethodName      = "/fostercare.v1.ReferralsService/ListReferrals"
	ReferralsService_TransitionReferral_FullMethodName = "/fostercare.v1.ReferralsService/TransitionReferral"
	ReferralsService_AssignCarer_FullMethodName        = "/fostercare.v1.ReferralsService/AssignCarer"
)

// ReferralsServiceClient is the client API for ReferralsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ReferralsServiceClient interface {
	CreateReferral(ctx context.Context, in *CreateReferralRequest, opts ...grpc.CallOption) (*CreateReferralResponse, error)
	GetReferral(ctx context.Context, in *GetReferralRequest, opts ...grpc.CallOption) (*GetReferralResponse, error)
	ListReferrals(ctx context.Context, in *ListReferralsRequest, opts ...grpc.CallOption) (*ListReferralsResponse, error)
	TransitionReferral(ctx context.Context, in *TransitionReferralRequest, opts ...grpc.CallOption) (*TransitionReferralResponse, error)
	AssignCarer(ctx context.Context, in *AssignCarerRequest, opts ...grpc.CallOption) (*AssignCarerResponse, error)
}

type referralsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReferralsServiceClient(cc grpc.ClientConnInterface) ReferralsServiceClient {
	return &referralsServiceClient{cc}
}

func (c *referralsServiceClient) CreateReferral(ctx context.Context, in *CreateReferralRequest, opts ...grpc.CallOption) (*CreateReferralResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateReferralResponse)
	err := c.cc.Invoke(ctx, ReferralsService_CreateReferral_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *referralsServiceClient) GetReferral(ctx context.Context, in *GetReferralRequest, opts ...grpc.CallOption) (*GetReferralResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetReferralResponse)
	err := c.cc.Invoke(ctx, ReferralsService_GetReferral_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *referralsServiceClient) ListReferrals(ctx context.Context, in *ListReferralsRequest, opts ...grpc.CallOption) (*ListReferralsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListReferralsResponse)
	err := c.cc.Invoke(ctx, ReferralsService_ListReferrals_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *referralsServiceClient) TransitionReferral(ctx context.Context, in *TransitionReferralRequest, opts ...grpc.CallOption) (*TransitionReferralResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TransitionReferralResponse)
	err := c.cc.Invoke(ctx, ReferralsService_TransitionReferral_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *referralsServiceClient) AssignCarer(ctx context.Context, in *AssignCarerRequest, opts ...grpc.CallOption) (*AssignCarerResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AssignCarerResponse)
	err := c.cc.Invoke(ctx, ReferralsService_AssignCarer_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReferralsServiceServer is the server API for ReferralsService service.
// All implementations must embed UnimplementedReferralsServiceServer
// for forward compatibility.
type ReferralsServiceServer interface {
	CreateReferral(context.Context, *CreateReferralRequest) (*CreateReferralResponse, error)
	GetReferral(context.Context, *GetReferralRequest) (*GetReferralResponse, error)
	ListReferrals(context.Context, *ListReferralsRequest) (*ListReferralsResponse, error)
	TransitionReferral(context.Context, *TransitionReferralRequest) (*TransitionReferralResponse, error)
	AssignCarer(context.Context, *AssignCarerRequest) (*AssignCarerResponse, error)
	mustEmbedUnimplementedReferralsServiceServer()
}

// UnimplementedReferralsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedReferralsServiceServer struct{}

func (UnimplementedReferralsServiceServer) CreateReferral(context.Context, *CreateReferralRequest) (*CreateReferralResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateReferral not implemented")
}
func (UnimplementedReferralsServiceServer) GetReferral(context.Context, *GetReferralRequest) (*GetReferralResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetReferral not implemented")
}
func (UnimplementedReferralsServiceServer) ListReferrals(context.Context, *ListReferralsRequest) (*ListReferralsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListReferrals not implemented")
}
func (UnimplementedReferralsServiceServer) TransitionReferral(context.Context, *TransitionReferralRequest) (*TransitionReferralResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TransitionReferral not implemented")
}
func (UnimplementedReferralsServiceServer) AssignCarer(context.Context, *AssignCarerRequest) (*AssignCarerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AssignCarer not implemented")
}
func (UnimplementedReferralsServiceServer) mustEmbedUnimplementedReferralsServiceServer() {}
func (UnimplementedReferralsServiceServer) testEmbeddedByValue()                          {}

// UnsafeReferralsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ReferralsServiceServer will
// result in compilation errors.
type UnsafeReferralsServiceServer interface {
	mustEmbedUnimplementedReferralsServiceServer()
}

func RegisterReferralsServiceServer(s grpc.ServiceRegistrar, srv ReferralsServiceServer) {
	// If the following call pancis, it indicates UnimplementedReferralsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ReferralsService_ServiceDesc, srv)
}

func _ReferralsService_CreateReferral_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateReferralRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReferralsServiceServer).CreateReferral(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReferralsService_CreateReferral_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReferralsServiceServer).CreateReferral(ctx, req.(*CreateReferralRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReferralsService_GetReferral_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetReferralRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReferralsServiceServer).GetReferral(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReferralsService_GetReferral_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReferralsServiceServer).GetReferral(ctx, req.(*GetReferralRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReferralsService_ListReferrals_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListReferralsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReferralsServiceServer).ListReferrals(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReferralsService_ListReferrals_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReferralsServiceServer).ListReferrals(ctx, req.(*ListReferralsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReferralsService_TransitionReferral_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TransitionReferralRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReferralsServiceServer).TransitionReferral(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReferralsService_TransitionReferral_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReferralsServiceServer).TransitionReferral(ctx, req.(*TransitionReferralRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReferralsService_AssignCarer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AssignCarerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReferralsServiceServer).AssignCarer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReferralsService_AssignCarer_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReferralsServiceServer).AssignCarer(ctx, req.(*AssignCarerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ReferralsService_ServiceDesc is the grpc.ServiceDesc for ReferralsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ReferralsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "fostercare.v1.ReferralsService",
	HandlerType: (*ReferralsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateReferral",
			Handler:    _ReferralsService_CreateReferral_Handler,
		},
		{
			MethodName: "GetReferral",
			Handler:    _ReferralsService_GetReferral_Handler,
		},
		{
			MethodName: "ListReferrals",
			Handler:    _ReferralsService_ListReferrals_Handler,
		},
		{
			MethodName: "TransitionReferral",
			Handler:    _ReferralsService_TransitionReferral_Handler,
		},
		{
			MethodName: "AssignCarer",
			Handler:    _ReferralsService_AssignCarer_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "fostercare/v1/fostercare.proto",
}

const (
	MatchingService_MatchReferral_FullMethodName   = "/fostercare.v1.MatchingService/MatchReferral"
	MatchingService_PreviewMatching_FullMethodName = "/fostercare.v1.MatchingService/PreviewMatching"
)

// MatchingServiceClient is the client API for MatchingService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type MatchingServiceClient interface {
	MatchReferral(ctx context.Context, in *MatchReferralRequest, opts ...grpc.CallOption) (*MatchReferralResponse, error)
	PreviewMatching(ctx context.Context, in *PreviewMatchingRequest, opts ...grpc.CallOption) (*PreviewMatchingResponse, error)
}

type matchingServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMatchingServiceClient(cc grpc.ClientConnInterface) MatchingServiceClient {
	return &matchingServiceClient{cc}
}

func (c *matchingServiceClient) MatchReferral(ctx context.Context, in *MatchReferralRequest, opts ...grpc.CallOption) (*MatchReferralResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MatchReferralResponse)
	err := c.cc.Invoke(ctx, MatchingService_MatchReferral_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *matchingServiceClient) PreviewMatching(ctx context.Context, in *PreviewMatchingRequest, opts ...grpc.CallOption) (*PreviewMatchingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PreviewMatchingResponse)
	err := c.cc.Invoke(ctx, MatchingService_PreviewMatching_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MatchingServiceServer is the server API for MatchingService service.
// All implementations must embed UnimplementedMatchingServiceServer
// for forward compatibility.
type MatchingServiceServer interface {
	MatchReferral(context.Context, *MatchReferralRequest) (*MatchReferralResponse, error)
	PreviewMatching(context.Context, *PreviewMatchingRequest) (*PreviewMatchingResponse, error)
	mustEmbedUnimplementedMatchingServiceServer()
}

// UnimplementedMatchingServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedMatchingServiceServer struct{}

func (UnimplementedMatchingServiceServer) MatchReferral(context.Context, *MatchReferralRequest) (*MatchReferralResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MatchReferral not implemented")
}
func (UnimplementedMatchingServiceServer) PreviewMatching(context.Context, *PreviewMatchingRequest) (*PreviewMatchingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PreviewMatching not implemented")
}
func (UnimplementedMatchingServiceServer) mustEmbedUnimplementedMatchingServiceServer() {}
func (UnimplementedMatchingServiceServer) testEmbeddedByValue()                         {}

// UnsafeMatchingServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to MatchingServiceServer will
// result in compilation errors.
type UnsafeMatchingServiceServer interface {
	mustEmbedUnimplementedMatchingServiceServer()
}

func RegisterMatchingServiceServer(s grpc.ServiceRegistrar, srv MatchingServiceServer) {
	// If the following call pancis, it indicates UnimplementedMatchingServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&MatchingService_ServiceDesc, srv)
}

func _MatchingService_MatchReferral_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MatchReferralRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MatchingServiceServer).MatchReferral(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MatchingService_MatchReferral_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MatchingServiceServer).MatchReferral(ctx, req.(*MatchReferralRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MatchingService_PreviewMatching_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PreviewMatchingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MatchingServiceServer).PreviewMatching(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MatchingService_PreviewMatching_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MatchingServiceServer).PreviewMatching(ctx, req.(*PreviewMatchingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MatchingService_ServiceDesc is the grpc.ServiceDesc for MatchingService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var MatchingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "fostercare.v1.MatchingService",
	HandlerType: (*MatchingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "MatchReferral",
			Handler:    _MatchingService_MatchReferral_Handler,
		},
		{
			MethodName: "PreviewMatching",
			Handler:    _MatchingService_PreviewMatching_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "fostercare/v1/fostercare.proto",
}

const (
	ExportService_ExportMatches_FullMethodName   = "/fostercare.v1.ExportService/ExportMatches"
	ExportService_ExportReferrals_FullMethodName = "/fostercare.v1.ExportService/ExportReferrals"
)

// ExportServiceClient is the client API for ExportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ExportServiceClient interface {
	ExportMatches(ctx context.Context, in *ExportMatchesRequest, opts ...grpc.CallOption) (*ExportMatchesResponse, error)
	ExportReferrals(ctx context.Context, in *ExportReferralsRequest, opts ...grpc.CallOption) (*ExportReferralsResponse, error)
}

type exportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExportServiceClient(cc grpc.ClientConnInterface) ExportServiceClient {
	return &exportServiceClient{cc}
}

func (c *exportServiceClient) ExportMatches(ctx context.Context, in *ExportMatchesRequest, opts ...grpc.CallOption) (*ExportMatchesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportMatchesResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportMatches_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *exportServiceClient) ExportReferrals(ctx context.Context, in *ExportReferralsRequest, opts ...grpc.CallOption) (*ExportReferralsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportReferralsResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportReferrals_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExportServiceServer is the server API for ExportService service.
// All implementations must embed UnimplementedExportServiceServer
// for forward compatibility.
type ExportServiceServer interface {
	ExportMatches(context.Context, *ExportMatchesRequest) (*ExportMatchesResponse, error)
	ExportReferrals(context.Context, *ExportReferralsRequest) (*ExportReferralsResponse, error)
	mustEmbedUnimplementedExportServiceServer()
}

// UnimplementedExportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExportServiceServer struct{}

func (UnimplementedExportServiceServer) ExportMatches(context.Context, *ExportMatchesRequest) (*ExportMatchesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportMatches not implemented")
}
func (UnimplementedExportServiceServer) ExportReferrals(context.Context, *ExportReferralsRequest) (*ExportReferralsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportReferrals not implemented")
}
func (UnimplementedExportServiceServer) mustEmbedUnimplementedExportServiceServer() {}
func (UnimplementedExportServiceServer) testEmbeddedByValue()                       {}

// UnsafeExportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExportServiceServer will
// result in compilation errors.
type UnsafeExportServiceServer interface {
	mustEmbedUnimplementedExportServiceServer()
}

func RegisterExportServiceServer(s grpc.ServiceRegistrar, srv ExportServiceServer) {
	// If the following call pancis, it indicates UnimplementedExportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExportService_ServiceDesc, srv)
}

func _ExportService_ExportMatches_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportMatchesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportMatches(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportMatches_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportMatches(ctx, req.(*ExportMatchesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExportService_ExportReferrals_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportReferralsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportReferrals(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportReferrals_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportReferrals(ctx, req.(*ExportReferralsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExportService_ServiceDesc is the grpc.ServiceDesc for ExportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "fostercare.v1.ExportService",
	HandlerType: (*ExportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExportMatches",
			Handler:    _ExportService_ExportMatches_Handler,
		},
		{
			MethodName: "ExportReferrals",
			Handler:    _ExportService_ExportReferrals_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "fostercare/v1/fostercare.proto",
}
