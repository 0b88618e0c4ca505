// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ics-oracle/internal/requirements"
	"github.com/MKhiriev/go-ics-oracle/models"
)

// Field name constants used to restrict validation to a subset of checks.
const (
	FieldSynchronizationType  = "synchronization_type"
	FieldSynchronizationFlags = "synchronization_flags"
	FieldSendOptions          = "send_options"
	FieldExtraFlags           = "extra_flags"
	FieldCopyFlags            = "copy_flags"
	FieldImportDeleteFlags    = "import_delete_flags"
	FieldImportFlag           = "import_flag"
	FieldSourceOperation      = "source_operation"
	FieldIDCount              = "id_count"
	FieldRanges               = "ranges"
	FieldProperty             = "property"
)

const syncTypeReserved models.SynchronizationType = 0x04

// copyRule describes the version-gated copy flag rules of one FastTransfer
// source operation.
type copyRule struct {
	known           models.CopyFlags
	moveUnsupported requirements.Behavior
	unknownRejected requirements.Behavior
}

var (
	copyToRule = copyRule{
		known:           models.CopyToFlagsKnown,
		moveUnsupported: requirements.CopyToMoveNotSupported,
		unknownRejected: requirements.CopyToUnknownFlagRejected,
	}
	copyPropertiesRule = copyRule{
		known:           models.CopyPropertiesFlagsKnown,
		moveUnsupported: requirements.CopyPropertiesMoveNotSupported,
		unknownRejected: requirements.CopyPropertiesUnknownFlagRejected,
	}
	copyMessagesRule = copyRule{
		known:           models.CopyMessagesFlagsKnown,
		moveUnsupported: requirements.CopyMessagesMoveNotSupported,
		unknownRejected: requirements.CopyMessagesUnknownFlagRejected,
	}
	copyFolderRule = copyRule{
		known:           models.CopyFolderFlagsKnown,
		moveUnsupported: requirements.CopyFolderMoveNotSupported,
		unknownRejected: requirements.CopyFolderUnknownFlagRejected,
	}
)

// ROPValidator validates the flag parameters of ROP requests.
type ROPValidator struct {
	policy requirements.Policy
	sink   requirements.Sink
}

func NewROPValidator(policy requirements.Policy, sink requirements.Sink) *ROPValidator {
	if sink == nil {
		sink = requirements.NopSink{}
	}
	return &ROPValidator{policy: policy, sink: sink}
}

func (v *ROPValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SynchronizationConfigureRequest:
		return v.validateSynchronizationConfigure(ctx, value, fields...)
	case *models.SynchronizationConfigureRequest:
		return v.validateSynchronizationConfigure(ctx, *value, fields...)

	case models.SynchronizationImportDeletesRequest:
		return v.validateImportDeletes(ctx, value, fields...)
	case *models.SynchronizationImportDeletesRequest:
		return v.validateImportDeletes(ctx, *value, fields...)

	case models.SynchronizationImportMessageChangeRequest:
		return v.validateImportMessageChange(ctx, value, fields...)
	case *models.SynchronizationImportMessageChangeRequest:
		return v.validateImportMessageChange(ctx, *value, fields...)

	case models.SynchronizationUploadStateRequest:
		return v.validateUploadState(value, fields...)

	case models.FastTransferSourceCopyToRequest:
		return v.validateCopy(ctx, copyToRule, value.CopyFlags, value.SendOptions, fields...)
	case models.FastTransferSourceCopyPropertiesRequest:
		return v.validateCopy(ctx, copyPropertiesRule, value.CopyFlags, value.SendOptions, fields...)
	case models.FastTransferSourceCopyMessagesRequest:
		return v.validateCopy(ctx, copyMessagesRule, value.CopyFlags, value.SendOptions, fields...)
	case models.FastTransferSourceCopyFolderRequest:
		return v.validateCopy(ctx, copyFolderRule, value.CopyFlags, value.SendOptions, fields...)

	case models.FastTransferDestinationConfigureRequest:
		return v.validateDestinationConfigure(ctx, value, fields...)

	case models.GetLocalReplicaIdsRequest:
		return v.validateLocalReplicaIds(value, fields...)
	case models.SetLocalReplicaMidsetDeletedRequest:
		return v.validateMidsetDeleted(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ROPValidator) capture(ctx context.Context, r requirements.Requirement) {
	v.sink.Capture(ctx, r, r.Description())
}

func (v *ROPValidator) validateSynchronizationConfigure(ctx context.Context, req models.SynchronizationConfigureRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSynchronizationType, FieldSynchronizationFlags, FieldSendOptions, FieldExtraFlags}
	}

	for _, f := range fields {
		switch f {
		case FieldSynchronizationType:
			switch req.SynchronizationType {
			case models.SyncTypeContents, models.SyncTypeHierarchy:
			case syncTypeReserved:
				if v.policy.Enabled(requirements.SyncTypeFourNotSupported) {
					v.capture(ctx, requirements.SyncTypeFourRejected)
					return fmt.Errorf("%w: synchronization type 0x%02x", ErrNotSupported, req.SynchronizationType)
				}
				v.capture(ctx, requirements.SyncTypeInvalid)
				return fmt.Errorf("%w: synchronization type 0x%02x", ErrInvalidParameter, req.SynchronizationType)
			default:
				v.capture(ctx, requirements.SyncTypeInvalid)
				return fmt.Errorf("%w: synchronization type 0x%02x", ErrInvalidParameter, req.SynchronizationType)
			}
		case FieldSynchronizationFlags:
			if req.SynchronizationFlags.Has(models.SyncFlagReserved) {
				v.capture(ctx, requirements.ReservedFlagRejected)
				return fmt.Errorf("%w: reserved synchronization flag set", ErrRPCFormat)
			}
			if req.SynchronizationFlags.Has(models.SyncFlagUnicode) != req.SendOptions.Has(models.SendOptionUnicode) {
				v.capture(ctx, requirements.UnicodeFlagMismatch)
				return fmt.Errorf("%w: unicode synchronization flag does not match send options", ErrInvalidParameter)
			}
		case FieldSendOptions:
			if u := req.SendOptions.Unknown(); u != 0 {
				v.capture(ctx, requirements.SendOptionsUnknownBits)
				return fmt.Errorf("%w: send options 0x%02x", ErrInvalidParameter, uint8(u))
			}
		case FieldExtraFlags:
			if u := req.ExtraFlags.Unknown(); u != 0 {
				v.capture(ctx, requirements.ExtraFlagsUnknownBits)
				return fmt.Errorf("%w: extra flags 0x%x", ErrInvalidParameter, uint32(u))
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ROPValidator) validateImportDeletes(ctx context.Context, req models.SynchronizationImportDeletesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldImportDeleteFlags}
	}

	for _, f := range fields {
		switch f {
		case FieldImportDeleteFlags:
			if req.Flags.Unknown() != 0 {
				v.capture(ctx, requirements.ImportDeleteUndefinedFlag)
				return fmt.Errorf("%w: import delete flags 0x%02x", ErrInvalidParameter, uint8(req.Flags))
			}
			if req.Flags.Has(models.ImportDeleteHardDelete) && v.policy.Enabled(requirements.HardDeleteNotSupported) {
				v.capture(ctx, requirements.ImportHardDeleteNotSupported)
				return fmt.Errorf("%w: hard delete", ErrNotSupported)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ROPValidator) validateImportMessageChange(ctx context.Context, req models.SynchronizationImportMessageChangeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldImportFlag}
	}

	for _, f := range fields {
		switch f {
		case FieldImportFlag:
			if req.ImportFlag.Unknown() != 0 && v.policy.Enabled(requirements.ImportMessageChangeUnknownFlagRejected) {
				v.capture(ctx, requirements.ImportMessageUnknownFlag)
				return fmt.Errorf("%w: import flag 0x%02x", ErrInvalidParameter, uint8(req.ImportFlag))
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ROPValidator) validateUploadState(req models.SynchronizationUploadStateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProperty}
	}

	for _, f := range fields {
		switch f {
		case FieldProperty:
			switch req.Property {
			case models.PidTagIdsetGiven, models.PidTagCnsetSeen, models.PidTagCnsetSeenFAI, models.PidTagCnsetRead:
			default:
				return fmt.Errorf("%w: ICS property %q", ErrInvalidParameter, req.Property)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ROPValidator) validateCopy(ctx context.Context, rule copyRule, flags models.CopyFlags, opts models.SendOptions, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCopyFlags, FieldSendOptions}
	}

	for _, f := range fields {
		switch f {
		case FieldCopyFlags:
			if flags&^rule.known != 0 && v.policy.Enabled(rule.unknownRejected) {
				v.capture(ctx, requirements.CopyUnknownFlagRejected)
				return fmt.Errorf("%w: copy flags 0x%x", ErrInvalidParameter, uint32(flags))
			}
			if flags.Has(models.CopyFlagMove) && v.policy.Enabled(rule.moveUnsupported) {
				v.capture(ctx, requirements.CopyMoveNotSupported)
				return fmt.Errorf("%w: move copy flag", ErrNotSupported)
			}
		case FieldSendOptions:
			if opts.Unknown() != 0 && v.policy.Enabled(requirements.SendOptionsUnknownFlagRejected) {
				v.capture(ctx, requirements.SendOptionsUnknownBits)
				return fmt.Errorf("%w: send options 0x%02x", ErrInvalidParameter, uint8(opts))
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ROPValidator) validateDestinationConfigure(ctx context.Context, req models.FastTransferDestinationConfigureRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSourceOperation, FieldCopyFlags}
	}

	for _, f := range fields {
		switch f {
		case FieldSourceOperation:
			switch req.SourceOperation {
			case models.SourceOperationCopyTo, models.SourceOperationCopyProperties,
				models.SourceOperationCopyMessages, models.SourceOperationCopyFolder:
			default:
				return fmt.Errorf("%w: source operation 0x%02x", ErrInvalidParameter, uint8(req.SourceOperation))
			}
		case FieldCopyFlags:
			if req.CopyFlags&^models.DestinationFlagsKnown != 0 && v.policy.Enabled(requirements.DestinationUnknownFlagRejected) {
				v.capture(ctx, requirements.CopyUnknownFlagRejected)
				return fmt.Errorf("%w: copy flags 0x%x", ErrInvalidParameter, uint32(req.CopyFlags))
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ROPValidator) validateLocalReplicaIds(req models.GetLocalReplicaIdsRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIDCount}
	}

	for _, f := range fields {
		switch f {
		case FieldIDCount:
			if req.IDCount <= 0 {
				return fmt.Errorf("%w: id count %d", ErrInvalidParameter, req.IDCount)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ROPValidator) validateMidsetDeleted(req models.SetLocalReplicaMidsetDeletedRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRanges}
	}

	for _, f := range fields {
		switch f {
		case FieldRanges:
			for i, r := range req.Ranges {
				if r.Low > r.High {
					return fmt.Errorf("%w: range %d has low %d above high %d", ErrInvalidParameter, i, r.Low, r.High)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
