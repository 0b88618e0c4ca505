// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-ics-oracle/internal/requirements"
	"github.com/MKhiriev/go-ics-oracle/internal/store"
	"github.com/MKhiriev/go-ics-oracle/models"
)

// propertyFilter decides which properties and sub-object collections of an
// object go into a FastTransfer stream.
type propertyFilter struct {
	tags []models.PropertyName
	// include makes tags the properties to keep instead of the ones to drop.
	include bool
	level   int
}

// fullCopy keeps everything. Objects nested in a stream are copied this way.
var fullCopy = propertyFilter{}

func filterFor(d *store.DownloadContext) propertyFilter {
	return propertyFilter{
		tags:    d.PropertyTags,
		include: d.ConfiguredBy == store.OriginCopyProperties,
		level:   d.Level,
	}
}

// properties returns the kept names and whether any name was filtered out.
func (p propertyFilter) properties(set store.PropertySet) ([]models.PropertyName, bool) {
	names := make([]models.PropertyName, 0, len(set))
	omitted := false
	for _, n := range set.Names() {
		if models.ContainsProperty(p.tags, n) == p.include {
			names = append(names, n)
		} else {
			omitted = true
		}
	}
	return names, omitted
}

// collection reports whether the sub-object collection named by tag is sent
// and whether it is preceded by FXDelProp. Sub-objects need level zero; an
// explicitly requested collection is always preceded by FXDelProp.
func (p propertyFilter) collection(tag models.PropertyName) (present, delProp bool) {
	if p.level != 0 {
		return false, false
	}
	requested := models.ContainsProperty(p.tags, tag)
	if p.include {
		return requested, requested
	}
	return !requested, false
}

func bestBody(d *store.DownloadContext) bool {
	switch d.ConfiguredBy {
	case store.OriginCopyTo:
		return d.CopyFlags.Has(models.CopyFlagBestBody)
	case store.OriginCopyMessages:
		return d.CopyFlags.Has(models.CopyMessagesFlagBestBody)
	default:
		return false
	}
}

func (s *oracleService) messageContent(ctx context.Context, m *store.Message, enc models.StringEncoding, best bool, filter propertyFilter) models.MessageContent {
	mc := models.MessageContent{
		MessageID:  m.ID,
		Associated: m.Associated,
		Encoding:   enc,
		BestBody:   best,
	}
	mc.Properties, _ = filter.properties(m.Properties)
	mc.RecipientsPresent, mc.RecipientsPrecededByDel = filter.collection(models.PidTagMessageRecipients)
	mc.AttachmentsPresent, mc.AttachmentsPrecededByDel = filter.collection(models.PidTagMessageAttachments)
	if mc.AttachmentsPresent {
		mc.AttachmentCount = m.AttachmentCount
	}
	if mc.RecipientsPrecededByDel || mc.AttachmentsPrecededByDel {
		s.capture(ctx, requirements.FXDelPropPrecedesCollection)
	}
	return mc
}

// folderContent describes folder f. With move, messages of a folder the
// client cannot delete from and subfolders it cannot delete are omitted.
func (s *oracleService) folderContent(ctx context.Context, conn *store.Connection, f *store.Folder, filter propertyFilter, move bool, enc models.StringEncoding) models.FolderContent {
	fc := models.FolderContent{FolderID: f.ID, Encoding: enc}
	fc.Properties, fc.PropertiesOmitted = filter.properties(f.Properties)

	normal, normalDel := filter.collection(models.PidTagContainerContents)
	fai, faiDel := filter.collection(models.PidTagFolderAssociatedContents)
	subs, subsDel := filter.collection(models.PidTagContainerHierarchy)
	fc.MessagesPrecededByDel = normalDel || faiDel
	fc.SubFoldersPrecededByDel = subsDel
	if fc.MessagesPrecededByDel || fc.SubFoldersPrecededByDel {
		s.capture(ctx, requirements.FXDelPropPrecedesCollection)
	}

	omit := func() {
		fc.NoPermissionObjectsOmitted = true
		fc.EcWarningPresent = true
		s.capture(ctx, requirements.MoveOmitsNoPermission)
	}

	if normal || fai {
		if move && !f.Permission.CanDelete() {
			omit()
		} else {
			for _, m := range conn.MessagesIn(f) {
				switch {
				case m.Associated && fai:
					fc.AssociatedMessages = append(fc.AssociatedMessages, s.messageContent(ctx, m, enc, false, fullCopy))
				case !m.Associated && normal:
					fc.Messages = append(fc.Messages, s.messageContent(ctx, m, enc, false, fullCopy))
				}
			}
		}
	}

	if subs {
		for _, id := range f.SubFolderIDs.Values() {
			child, err := conn.FolderByID(id)
			if err != nil {
				continue
			}
			if move && !child.Permission.CanDelete() {
				omit()
				continue
			}
			fc.SubFolders = append(fc.SubFolders, s.folderContent(ctx, conn, child, fullCopy, move, enc))
		}
	}
	return fc
}

func (s *oracleService) folderContentStream(ctx context.Context, conn *store.Connection, d *store.DownloadContext) (*models.FolderContent, error) {
	f, err := conn.FolderByID(d.FolderID)
	if err != nil {
		return nil, err
	}
	fc := s.folderContent(ctx, conn, f, filterFor(d), d.CopyFlags.Has(models.CopyFlagMove), s.encoding(ctx, d.SendOptions))
	return &fc, nil
}

// messageContentStream fails with AccessDenied when a move would delete from
// a folder the client cannot delete from.
func (s *oracleService) messageContentStream(ctx context.Context, conn *store.Connection, d *store.DownloadContext) (*models.MessageContent, error) {
	m, err := conn.MessageByHandle(d.MessageHandle)
	if err != nil {
		return nil, err
	}
	if d.CopyFlags.Has(models.CopyFlagMove) {
		f, err := conn.FolderByID(m.FolderID)
		if err != nil {
			return nil, err
		}
		if !f.Permission.CanDelete() {
			return nil, ErrAccessDenied
		}
	}
	mc := s.messageContent(ctx, m, s.encoding(ctx, d.SendOptions), bestBody(d), filterFor(d))
	return &mc, nil
}

// messageListStream keeps the configured order. Messages deleted since the
// context was configured are skipped.
func (s *oracleService) messageListStream(ctx context.Context, conn *store.Connection, d *store.DownloadContext) (*models.MessageList, error) {
	enc := s.encoding(ctx, d.SendOptions)
	move := d.CopyFlags.Has(models.CopyFlagMove)
	best := bestBody(d)

	ml := &models.MessageList{Messages: make([]models.MessageContent, 0, len(d.MessageIDs))}
	for _, id := range d.MessageIDs {
		m, err := conn.MessageByID(id)
		if err != nil {
			continue
		}
		if move {
			f, err := conn.FolderByID(m.FolderID)
			if err != nil || !f.Permission.CanDelete() {
				ml.NoPermissionObjectsOmitted = true
				ml.EcWarningPresent = true
				s.capture(ctx, requirements.MoveOmitsNoPermission)
				continue
			}
		}
		ml.Messages = append(ml.Messages, s.messageContent(ctx, m, enc, best, fullCopy))
	}
	return ml, nil
}

// topFolderStream copies the folder with its messages; subfolders only with
// CopySubfolders.
func (s *oracleService) topFolderStream(ctx context.Context, conn *store.Connection, d *store.DownloadContext) (*models.TopFolder, error) {
	f, err := conn.FolderByID(d.FolderID)
	if err != nil {
		return nil, err
	}

	withSubs := d.CopyFlags.Has(models.CopyFlagCopySubfolders)
	filter := fullCopy
	if !withSubs {
		filter = propertyFilter{tags: []models.PropertyName{models.PidTagContainerHierarchy}}
	}
	fc := s.folderContent(ctx, conn, f, filter, d.CopyFlags.Has(models.CopyFlagMove), s.encoding(ctx, d.SendOptions))
	fc.PropertiesOmitted = false

	return &models.TopFolder{Folder: fc, SubFoldersInScope: withSubs}, nil
}

func (s *oracleService) attachmentContentStream(ctx context.Context, conn *store.Connection, d *store.DownloadContext) (*models.AttachmentContent, error) {
	a, err := conn.AttachmentByHandle(d.ObjectHandle)
	if err != nil {
		return nil, err
	}
	ac := &models.AttachmentContent{AttachmentHandle: a.Handle, Encoding: s.encoding(ctx, d.SendOptions)}
	ac.Properties, _ = filterFor(d).properties(a.Properties)
	return ac, nil
}
