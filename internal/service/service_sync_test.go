// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ics-oracle/internal/requirements"
	"github.com/MKhiriev/go-ics-oracle/models"
)

func TestSynchronizationConfigure_Validation(t *testing.T) {
	tests := []struct {
		name    string
		enabled []requirements.Behavior
		req     models.SynchronizationConfigureRequest
		badDir  bool
		want    models.ResultCode
	}{
		{
			name: "contents",
			req:  models.SynchronizationConfigureRequest{SynchronizationType: models.SyncTypeContents},
			want: models.Success,
		},
		{
			name: "hierarchy with matching unicode",
			req: models.SynchronizationConfigureRequest{
				SynchronizationType:  models.SyncTypeHierarchy,
				SynchronizationFlags: models.SyncFlagUnicode,
				SendOptions:          models.SendOptionUnicode,
			},
			want: models.Success,
		},
		{
			name: "type 0x04 on older servers",
			req:  models.SynchronizationConfigureRequest{SynchronizationType: 0x04},
			want: models.InvalidParameter,
		},
		{
			name:    "type 0x04 on newer servers",
			enabled: []requirements.Behavior{requirements.SyncTypeFourNotSupported},
			req:     models.SynchronizationConfigureRequest{SynchronizationType: 0x04},
			want:    models.NotSupported,
		},
		{
			name: "undefined type",
			req:  models.SynchronizationConfigureRequest{SynchronizationType: 0x03},
			want: models.InvalidParameter,
		},
		{
			name: "reserved flag",
			req: models.SynchronizationConfigureRequest{
				SynchronizationType:  models.SyncTypeContents,
				SynchronizationFlags: models.SyncFlagReserved,
			},
			want: models.RPCFormat,
		},
		{
			name: "unicode flag without unicode send option",
			req: models.SynchronizationConfigureRequest{
				SynchronizationType:  models.SyncTypeContents,
				SynchronizationFlags: models.SyncFlagUnicode,
			},
			want: models.InvalidParameter,
		},
		{
			name: "unknown send option bits",
			req: models.SynchronizationConfigureRequest{
				SynchronizationType: models.SyncTypeContents,
				SendOptions:         0x40,
			},
			want: models.InvalidParameter,
		},
		{
			name: "unknown extra flags",
			req: models.SynchronizationConfigureRequest{
				SynchronizationType: models.SyncTypeContents,
				ExtraFlags:          0x100,
			},
			want: models.InvalidParameter,
		},
		{
			name:   "unknown folder",
			req:    models.SynchronizationConfigureRequest{SynchronizationType: models.SyncTypeContents},
			badDir: true,
			want:   models.InvalidParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.enabled...)
			tt.req.ServerID = testServerID
			tt.req.FolderHandle = f.inbox()
			if tt.badDir {
				tt.req.FolderHandle = 404
			}

			resp, err := f.svc.SynchronizationConfigure(f.ctx, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.ResultCode)
			if tt.want == models.Success {
				assert.Positive(t, resp.ContextHandle)
			} else {
				assert.Zero(t, resp.ContextHandle)
			}
		})
	}
}

func TestHierarchySync_ImportedFolderIsDownloaded(t *testing.T) {
	f := newFixture(t)
	upload := f.collector(f.inbox(), false)

	imported, err := f.svc.SynchronizationImportHierarchyChange(f.ctx, models.SynchronizationImportHierarchyChangeRequest{
		ServerID: testServerID, UploadContextHandle: upload, ParentFolderHandle: f.inbox(),
		Properties: []models.PropertyName{models.PidTagDisplayName},
	})
	require.NoError(t, err)
	require.Equal(t, models.Success, imported.ResultCode)
	assert.Positive(t, imported.FolderID)

	download := f.configure(models.SynchronizationConfigureRequest{FolderHandle: f.inbox(), SynchronizationType: models.SyncTypeHierarchy})

	first := f.getBuffer(download)
	assert.Equal(t, models.StreamHierarchySync, first.StreamType)
	require.Len(t, first.HierarchySync.FolderChanges, 1)
	change := first.HierarchySync.FolderChanges[0]
	assert.Equal(t, imported.FolderID, change.FolderID)
	assert.True(t, change.ParentSourceKeyEmpty)
	assert.Equal(t, []models.PropertyName{models.PidTagDisplayName}, change.Properties)
	assert.Contains(t, first.HierarchySync.FinalState.IdsetGiven, imported.FolderID)

	second := f.getBuffer(download)
	assert.Empty(t, second.HierarchySync.FolderChanges)
	assert.Greater(t, second.BufferIndex, first.BufferIndex)
}

func TestImportHierarchyChange_NoParent(t *testing.T) {
	tests := []struct {
		name   string
		parent func(f *fixture) int
	}{
		{name: "invalid handle", parent: func(*fixture) int { return models.InvalidHandle }},
		{name: "unknown handle", parent: func(*fixture) int { return 31337 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			upload := f.collector(f.inbox(), false)

			resp, err := f.svc.SynchronizationImportHierarchyChange(f.ctx, models.SynchronizationImportHierarchyChangeRequest{
				ServerID: testServerID, UploadContextHandle: upload, ParentFolderHandle: tt.parent(f),
			})
			require.NoError(t, err)
			assert.Equal(t, models.NoParentFolder, resp.ResultCode)
			assert.Equal(t, 1, f.conn().Folders())
			assert.True(t, f.recorder.Has(requirements.ImportHierarchyNoParent))
		})
	}
}

func TestImportHierarchyChange_UpdateReparents(t *testing.T) {
	f := newFixture(t)
	a := f.createFolder(f.inbox(), "A")
	b := f.createFolder(f.inbox(), "B")
	upload := f.collector(f.inbox(), false)

	resp, err := f.svc.SynchronizationImportHierarchyChange(f.ctx, models.SynchronizationImportHierarchyChangeRequest{
		ServerID: testServerID, UploadContextHandle: upload, ParentFolderHandle: a.FolderHandle, FolderID: b.FolderID,
	})
	require.NoError(t, err)
	require.Equal(t, models.Success, resp.ResultCode)
	assert.Equal(t, b.FolderID, resp.FolderID)

	moved, err := f.conn().FolderByID(b.FolderID)
	require.NoError(t, err)
	assert.Equal(t, a.FolderID, moved.ParentID)

	inbox, err := f.conn().FolderByID(f.logon.InboxFolderID)
	require.NoError(t, err)
	assert.False(t, inbox.SubFolderIDs.Contains(b.FolderID))
}

func TestImportHierarchyChange_RejectsCycle(t *testing.T) {
	tests := []struct {
		name   string
		parent func(a, child models.FolderResponse) int
	}{
		{name: "under itself", parent: func(a, _ models.FolderResponse) int { return a.FolderHandle }},
		{name: "under its child", parent: func(_, child models.FolderResponse) int { return child.FolderHandle }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			a := f.createFolder(f.inbox(), "A")
			child := f.createFolder(a.FolderHandle, "A1")
			upload := f.collector(f.inbox(), false)

			resp, err := f.svc.SynchronizationImportHierarchyChange(f.ctx, models.SynchronizationImportHierarchyChangeRequest{
				ServerID: testServerID, UploadContextHandle: upload, ParentFolderHandle: tt.parent(a, child), FolderID: a.FolderID,
			})
			require.NoError(t, err)
			assert.Equal(t, models.InvalidParameter, resp.ResultCode)
			assert.True(t, f.recorder.Has(requirements.ImportHierarchyCycleRejected))

			folder, err := f.conn().FolderByID(a.FolderID)
			require.NoError(t, err)
			assert.Equal(t, f.logon.InboxFolderID, folder.ParentID)
			assert.Equal(t, []int{child.FolderID}, folder.SubFolderIDs.Values())

			// the tree stays walkable
			download := f.configure(models.SynchronizationConfigureRequest{
				FolderHandle: a.FolderHandle, SynchronizationType: models.SyncTypeHierarchy,
			})
			assert.Len(t, f.getBuffer(download).HierarchySync.FolderChanges, 1)

			deleted, err := f.svc.DeleteFolder(f.ctx, models.DeleteFolderRequest{ServerID: testServerID, ParentFolderHandle: f.inbox(), FolderID: a.FolderID})
			require.NoError(t, err)
			assert.Equal(t, models.Success, deleted.ResultCode)
			assert.Equal(t, 1, f.conn().Folders())
		})
	}
}

func TestImportHierarchyChangeWithConflict(t *testing.T) {
	f := newFixture(t)
	upload := f.collector(f.inbox(), false)

	for _, ct := range []models.ConflictType{models.ConflictParentFolder, models.ConflictSameFolder} {
		resp, err := f.svc.SynchronizationImportHierarchyChangeWithConflict(f.ctx, models.SynchronizationImportHierarchyChangeRequest{
			ServerID: testServerID, UploadContextHandle: upload, ParentFolderHandle: f.inbox(), ConflictType: ct,
		})
		require.NoError(t, err)
		assert.Equal(t, models.Success, resp.ResultCode)
	}

	u, err := f.conn().Upload(upload)
	require.NoError(t, err)
	assert.Equal(t, []models.ConflictType{models.ConflictParentFolder, models.ConflictSameFolder}, u.ConflictTypes)
	assert.Equal(t, 3, f.conn().Folders())
}

func TestImportDeletes_Flags(t *testing.T) {
	tests := []struct {
		name       string
		enabled    []requirements.Behavior
		flags      models.ImportDeleteFlags
		want       models.ResultCode
		wantExists bool
		wantSoft   int
	}{
		{name: "soft delete", want: models.Success, wantSoft: 1},
		{name: "hard delete", flags: models.ImportDeleteHardDelete, want: models.Success},
		{
			name:       "hard delete unsupported",
			enabled:    []requirements.Behavior{requirements.HardDeleteNotSupported},
			flags:      models.ImportDeleteHardDelete,
			want:       models.NotSupported,
			wantExists: true,
		},
		{name: "undefined bit", flags: models.ImportDeleteUndefined, want: models.InvalidParameter, wantExists: true},
		{
			name:       "undefined bit on newer servers",
			enabled:    []requirements.Behavior{requirements.HardDeleteNotSupported},
			flags:      models.ImportDeleteUndefined,
			want:       models.InvalidParameter,
			wantExists: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.enabled...)
			folder := f.createFolder(f.inbox(), "Mail")
			msg := f.savedMessage(folder.FolderHandle, false)
			upload := f.collector(folder.FolderHandle, true)

			resp, err := f.svc.SynchronizationImportDeletes(f.ctx, models.SynchronizationImportDeletesRequest{
				ServerID: testServerID, UploadContextHandle: upload, Flags: tt.flags, ObjectIDs: []int{msg.MessageID},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.ResultCode)

			_, err = f.conn().MessageByID(msg.MessageID)
			assert.Equal(t, tt.wantExists, err == nil)

			record, err := f.conn().FolderByID(folder.FolderID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSoft, record.SoftDeletedMessages)
		})
	}
}

func TestImportDeletes_Hierarchy(t *testing.T) {
	f := newFixture(t)
	parent := f.createFolder(f.inbox(), "Parent")
	child := f.createFolder(parent.FolderHandle, "Child")
	stranger := f.createFolder(f.inbox(), "Stranger")
	upload := f.collector(parent.FolderHandle, false)

	resp, err := f.svc.SynchronizationImportDeletes(f.ctx, models.SynchronizationImportDeletesRequest{
		ServerID: testServerID, UploadContextHandle: upload, Flags: models.ImportDeleteHierarchy,
		ObjectIDs: []int{child.FolderID, stranger.FolderID, 5555},
	})
	require.NoError(t, err)
	require.Equal(t, models.Success, resp.ResultCode)

	_, err = f.conn().FolderByID(child.FolderID)
	assert.Error(t, err)
	_, err = f.conn().FolderByID(stranger.FolderID)
	assert.NoError(t, err, "folders outside the collector are skipped")

	table, err := f.svc.GetHierarchyTable(f.ctx, models.GetTableRequest{ServerID: testServerID, FolderHandle: parent.FolderHandle, Deleted: true})
	require.NoError(t, err)
	assert.Equal(t, 1, table.RowCount)
	assert.True(t, f.recorder.Has(requirements.SoftDeleteCounted))
}

func TestContentsSync_SoftAndHardDeletions(t *testing.T) {
	f := newFixture(t)
	folder := f.createFolder(f.inbox(), "Mail")
	soft := f.savedMessage(folder.FolderHandle, false)
	hard := f.savedMessage(folder.FolderHandle, false)
	kept := f.savedMessage(folder.FolderHandle, false)

	download := f.configure(models.SynchronizationConfigureRequest{
		FolderHandle: folder.FolderHandle, SynchronizationType: models.SyncTypeContents,
		SynchronizationFlags: models.SyncFlagNormal,
	})
	first := f.getBuffer(download)
	require.Len(t, first.ContentsSync.MessageChanges, 3)
	assert.Empty(t, first.ContentsSync.Deletions.IDSetDeleted)

	upload := f.collector(folder.FolderHandle, true)
	for _, del := range []struct {
		id    int
		flags models.ImportDeleteFlags
	}{{soft.MessageID, 0}, {hard.MessageID, models.ImportDeleteHardDelete}} {
		resp, err := f.svc.SynchronizationImportDeletes(f.ctx, models.SynchronizationImportDeletesRequest{
			ServerID: testServerID, UploadContextHandle: upload, Flags: del.flags, ObjectIDs: []int{del.id},
		})
		require.NoError(t, err)
		require.Equal(t, models.Success, resp.ResultCode)
	}

	second := f.getBuffer(download)
	cs := second.ContentsSync
	assert.Empty(t, cs.MessageChanges)
	assert.True(t, cs.Deletions.Present)
	assert.True(t, cs.Deletions.NoLongerInScopePresent)
	assert.Equal(t, []int{soft.MessageID}, cs.Deletions.IDSetSoftDeleted)
	assert.Equal(t, []int{hard.MessageID}, cs.Deletions.IDSetDeleted)
	assert.Contains(t, cs.FinalState.IdsetGiven, kept.MessageID)
	assert.NotContains(t, cs.FinalState.IdsetGiven, soft.MessageID)
}

func TestImportMessageChange(t *testing.T) {
	t.Run("hierarchy collector", func(t *testing.T) {
		f := newFixture(t)
		upload := f.collector(f.inbox(), false)

		resp, err := f.svc.SynchronizationImportMessageChange(f.ctx, models.SynchronizationImportMessageChangeRequest{ServerID: testServerID, UploadContextHandle: upload})
		require.NoError(t, err)
		assert.Equal(t, models.InvalidParameter, resp.ResultCode)
		assert.True(t, f.recorder.Has(requirements.ImportMessageOnHierarchyCollector))
	})

	t.Run("creates a message", func(t *testing.T) {
		f := newFixture(t)
		upload := f.collector(f.inbox(), true)

		resp, err := f.svc.SynchronizationImportMessageChange(f.ctx, models.SynchronizationImportMessageChangeRequest{
			ServerID: testServerID, UploadContextHandle: upload, ImportFlag: models.ImportFlagAssociated,
			Properties: []models.PropertyName{models.PidTagSubject},
		})
		require.NoError(t, err)
		require.Equal(t, models.Success, resp.ResultCode)
		assert.Positive(t, resp.MessageID)
		assert.Positive(t, resp.MessageHandle)

		m, err := f.conn().MessageByID(resp.MessageID)
		require.NoError(t, err)
		assert.True(t, m.Associated)
		assert.Zero(t, m.DeliveryOrder)
		assert.True(t, m.Properties.Has(models.PidTagSubject))
	})

	t.Run("updates an existing message", func(t *testing.T) {
		f := newFixture(t)
		saved := f.savedMessage(f.inbox(), false)
		m, err := f.conn().MessageByID(saved.MessageID)
		require.NoError(t, err)
		before := m.ChangeNumber
		upload := f.collector(f.inbox(), true)

		resp, err := f.svc.SynchronizationImportMessageChange(f.ctx, models.SynchronizationImportMessageChangeRequest{
			ServerID: testServerID, UploadContextHandle: upload, MessageID: saved.MessageID,
		})
		require.NoError(t, err)
		require.Equal(t, models.Success, resp.ResultCode)
		assert.Equal(t, saved.MessageID, resp.MessageID)
		assert.Greater(t, m.ChangeNumber, before)
	})

	unknownFlag := []struct {
		name    string
		enabled []requirements.Behavior
		want    models.ResultCode
	}{
		{name: "unknown flag ignored", want: models.Success},
		{name: "unknown flag rejected", enabled: []requirements.Behavior{requirements.ImportMessageChangeUnknownFlagRejected}, want: models.InvalidParameter},
	}
	for _, tt := range unknownFlag {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.enabled...)
			upload := f.collector(f.inbox(), true)

			resp, err := f.svc.SynchronizationImportMessageChange(f.ctx, models.SynchronizationImportMessageChangeRequest{
				ServerID: testServerID, UploadContextHandle: upload, ImportFlag: 0x80,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.ResultCode)
		})
	}
}

func TestImportReadStateChanges(t *testing.T) {
	t.Run("own change number", func(t *testing.T) {
		f := newFixture(t)
		saved := f.savedMessage(f.inbox(), false)
		upload := f.collector(f.inbox(), true)
		m, err := f.conn().MessageByID(saved.MessageID)
		require.NoError(t, err)

		resp, err := f.svc.SynchronizationImportReadStateChanges(f.ctx, models.SynchronizationImportReadStateChangesRequest{
			ServerID: testServerID, UploadContextHandle: upload, MessageID: saved.MessageID, Read: true,
		})
		require.NoError(t, err)
		require.Equal(t, models.Success, resp.ResultCode)
		assert.True(t, m.Read)
		assert.Greater(t, m.ReadStateChangeNumber, m.ChangeNumber)

		// the same flag again is not a change
		readCN := m.ReadStateChangeNumber
		_, err = f.svc.SynchronizationImportReadStateChanges(f.ctx, models.SynchronizationImportReadStateChangesRequest{
			ServerID: testServerID, UploadContextHandle: upload, MessageID: saved.MessageID, Read: true,
		})
		require.NoError(t, err)
		assert.Equal(t, readCN, m.ReadStateChangeNumber)
	})

	t.Run("no permission", func(t *testing.T) {
		f := newFixture(t)
		folder := f.createFolder(f.inbox(), "Locked")
		saved := f.savedMessage(folder.FolderHandle, false)
		upload := f.collector(folder.FolderHandle, true)
		_, err := f.svc.ModifyPermissions(f.ctx, models.ModifyPermissionsRequest{ServerID: testServerID, FolderHandle: folder.FolderHandle, Permission: models.PermissionNone})
		require.NoError(t, err)

		resp, err := f.svc.SynchronizationImportReadStateChanges(f.ctx, models.SynchronizationImportReadStateChangesRequest{
			ServerID: testServerID, UploadContextHandle: upload, MessageID: saved.MessageID, Read: true,
		})
		require.NoError(t, err)
		assert.Equal(t, models.AccessDenied, resp.ResultCode)

		m, err := f.conn().MessageByID(saved.MessageID)
		require.NoError(t, err)
		assert.False(t, m.Read)
	})
}

func TestImportMessageMove(t *testing.T) {
	tests := []struct {
		name        string
		newerClient bool
		want        models.ResultCode
	}{
		{name: "plain move", want: models.Success},
		{name: "newer client change", newerClient: true, want: models.NewerClientChange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			src := f.createFolder(f.inbox(), "Source")
			dst := f.createFolder(f.inbox(), "Target")
			saved := f.savedMessage(src.FolderHandle, false)
			upload := f.collector(dst.FolderHandle, true)

			resp, err := f.svc.SynchronizationImportMessageMove(f.ctx, models.SynchronizationImportMessageMoveRequest{
				ServerID: testServerID, UploadContextHandle: upload, SourceFolderHandle: src.FolderHandle,
				MessageID: saved.MessageID, NewerClientChange: tt.newerClient,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.ResultCode)
			assert.Equal(t, tt.newerClient, resp.OlderVersion)
			assert.Equal(t, tt.newerClient, resp.CnPcl)
			assert.NotEqual(t, saved.MessageID, resp.MessageID)

			moved, err := f.conn().MessageByID(resp.MessageID)
			require.NoError(t, err)
			assert.Equal(t, dst.FolderID, moved.FolderID)
			_, err = f.conn().MessageByID(saved.MessageID)
			assert.Error(t, err)
			assert.True(t, f.recorder.Has(requirements.MoveAssignsNewID))
		})
	}
}

func TestImportMessageMove_NotInSource(t *testing.T) {
	f := newFixture(t)
	src := f.createFolder(f.inbox(), "Source")
	saved := f.savedMessage(f.inbox(), false)
	upload := f.collector(src.FolderHandle, true)

	resp, err := f.svc.SynchronizationImportMessageMove(f.ctx, models.SynchronizationImportMessageMoveRequest{
		ServerID: testServerID, UploadContextHandle: upload, SourceFolderHandle: src.FolderHandle, MessageID: saved.MessageID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.InvalidParameter, resp.ResultCode)
}

func TestTransferStateRoundTrip(t *testing.T) {
	f := newFixture(t)
	folder := f.createFolder(f.inbox(), "Mail")
	saved := f.savedMessage(folder.FolderHandle, false)
	cfg := models.SynchronizationConfigureRequest{
		FolderHandle: folder.FolderHandle, SynchronizationType: models.SyncTypeContents,
		SynchronizationFlags: models.SyncFlagNormal,
	}

	download := f.configure(cfg)
	synced := f.getBuffer(download)
	require.Len(t, synced.ContentsSync.MessageChanges, 1)

	stateCtx, err := f.svc.SynchronizationGetTransferState(f.ctx, models.SynchronizationGetTransferStateRequest{ServerID: testServerID, ContextHandle: download})
	require.NoError(t, err)
	require.Equal(t, models.Success, stateCtx.ResultCode)

	state := f.getBuffer(stateCtx.ContextHandle)
	require.Equal(t, models.StreamState, state.StreamType)
	require.NotNil(t, state.State)
	assert.Positive(t, state.State.StateIndex)
	assert.Equal(t, []int{saved.MessageID}, state.State.IdsetGiven)

	fresh := f.configure(cfg)
	for _, p := range []models.ICSProperty{models.PidTagIdsetGiven, models.PidTagCnsetSeen, models.PidTagCnsetSeenFAI, models.PidTagCnsetRead} {
		resp, err := f.svc.SynchronizationUploadState(f.ctx, models.SynchronizationUploadStateRequest{
			ServerID: testServerID, ContextHandle: fresh, Property: p, StateIndex: state.State.StateIndex,
		})
		require.NoError(t, err)
		require.Equal(t, models.Success, resp.ResultCode, p)
	}

	resumed := f.getBuffer(fresh)
	assert.Empty(t, resumed.ContentsSync.MessageChanges)
	assert.Equal(t, state.State.IdsetGiven, resumed.ContentsSync.FinalState.IdsetGiven)
	assert.True(t, f.recorder.Has(requirements.UploadStateRestoresProperty))
}

func TestUploadState_Rejected(t *testing.T) {
	f := newFixture(t)
	download := f.configure(models.SynchronizationConfigureRequest{FolderHandle: f.inbox(), SynchronizationType: models.SyncTypeHierarchy})
	stored := f.getBuffer(download).HierarchySync.FinalState.StateIndex

	tests := []struct {
		name     string
		property models.ICSProperty
		index    int
		handle   int
	}{
		{name: "unknown state index", property: models.PidTagCnsetSeen, index: stored + 100, handle: download},
		{name: "unknown property", property: "PidTagBogus", index: stored, handle: download},
		{name: "unknown context", property: models.PidTagCnsetSeen, index: stored, handle: 6060},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := f.svc.SynchronizationUploadState(f.ctx, models.SynchronizationUploadStateRequest{
				ServerID: testServerID, ContextHandle: tt.handle, Property: tt.property, StateIndex: tt.index,
			})
			require.NoError(t, err)
			assert.Equal(t, models.InvalidParameter, resp.ResultCode)
		})
	}
}
