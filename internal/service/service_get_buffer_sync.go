// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-ics-oracle/internal/ics"
	"github.com/MKhiriev/go-ics-oracle/internal/requirements"
	"github.com/MKhiriev/go-ics-oracle/internal/store"
	"github.com/MKhiriev/go-ics-oracle/models"
)

// syncProperties applies the property tags of a synchronization download.
// Without OnlySpecifiedProperties the tags are excluded; with it only they
// are kept. IgnoreSpecifiedOnFAI sends FAI messages unfiltered.
func syncProperties(props store.PropertySet, d *store.DownloadContext, associated bool) []models.PropertyName {
	if associated && d.SyncFlags.Has(models.SyncFlagIgnoreSpecifiedOnFAI) {
		return props.Names()
	}
	only := d.SyncFlags.Has(models.SyncFlagOnlySpecifiedProperties)
	out := make([]models.PropertyName, 0, len(props))
	for _, n := range props.Names() {
		if models.ContainsProperty(d.PropertyTags, n) == only {
			out = append(out, n)
		}
	}
	return out
}

// hierarchyDepth bounds the hierarchy walk to child and grandchild folders.
const hierarchyDepth = 2

// hierarchySync walks the synchronized folder's children and grandchildren in
// pre-order, so a parent always precedes its children. Deeper folders are
// neither reported nor counted as live.
func (s *oracleService) hierarchySync(ctx context.Context, conn *store.Connection, d *store.DownloadContext) (*models.HierarchySync, error) {
	root, err := conn.FolderByID(d.FolderID)
	if err != nil {
		return nil, err
	}

	hs := &models.HierarchySync{FolderChanges: make([]models.FolderChange, 0), ParentBeforeChild: true}
	live := ics.NewSet()

	var walk func(parent *store.Folder, depth int)
	walk = func(parent *store.Folder, depth int) {
		for _, id := range parent.SubFolderIDs.Values() {
			child, err := conn.FolderByID(id)
			if err != nil {
				continue
			}
			live.Add(id)
			if d.State.Changed(id, child.ChangeNumber, false) {
				hs.FolderChanges = append(hs.FolderChanges, models.FolderChange{
					FolderID:              child.ID,
					ParentFolderID:        child.ParentID,
					ChangeNumber:          child.ChangeNumber,
					FolderIDPresent:       d.ExtraFlags.Has(models.ExtraFlagEid),
					ParentFolderIDPresent: d.SyncFlags.Has(models.SyncFlagNoForeignIdentifiers),
					ParentSourceKeyEmpty:  child.ParentID == root.ID,
					Properties:            syncProperties(child.Properties, d, false),
				})
				d.State.MarkSent(id, child.ChangeNumber, false)
			}
			if depth < hierarchyDepth {
				walk(child, depth+1)
			}
		}
	}
	walk(root, 1)
	if len(hs.FolderChanges) > 0 {
		s.capture(ctx, requirements.HierarchyParentBeforeChild)
	}

	if !d.SyncFlags.Has(models.SyncFlagNoDeletions) {
		hs.Deletions.Present = true
		hs.Deletions.IDSetDeleted = d.State.DetectDeletions(live)
		if len(hs.Deletions.IDSetDeleted) > 0 {
			s.capture(ctx, requirements.HierarchyDeletionsReported)
		}
	}

	hs.FinalState = s.snapshot(ctx, root, d)
	return hs, nil
}

// contentsSync reports new and changed messages of the synchronized folder,
// read-state changes and deletions.
func (s *oracleService) contentsSync(ctx context.Context, conn *store.Connection, d *store.DownloadContext) (*models.ContentsSync, error) {
	f, err := conn.FolderByID(d.FolderID)
	if err != nil {
		return nil, err
	}

	flags, extra := d.SyncFlags, d.ExtraFlags
	cs := &models.ContentsSync{
		MessageChanges:       make([]models.MessageChange, 0),
		ProgressTotalPresent: flags.Has(models.SyncFlagProgress),
	}

	msgs := conn.MessagesIn(f)
	live := ics.NewSet()
	for _, m := range msgs {
		live.Add(m.ID)
	}

	if flags.Has(models.SyncFlagFAI) || flags.Has(models.SyncFlagNormal) {
		s.capture(ctx, requirements.ContentsFAISelection)
	}
	selected := make([]*store.Message, 0, len(msgs))
	for _, m := range msgs {
		if (m.Associated && flags.Has(models.SyncFlagFAI)) || (!m.Associated && flags.Has(models.SyncFlagNormal)) {
			selected = append(selected, m)
		}
	}

	if extra.Has(models.ExtraFlagOrderByDeliveryTime) {
		cs.SortedByDeliveryTime, cs.SortedByLastModificationTime = orderByDelivery(selected)
		s.capture(ctx, requirements.ContentsOrderedByDelivery)
	}

	enc := s.encoding(ctx, d.SendOptions)
	partial := d.SendOptions.Has(models.SendOptionPartialItem) && !s.policy.Enabled(requirements.PartialItemNotSupported)
	sent := ics.NewSet()
	for _, m := range selected {
		if !d.State.Changed(m.ID, m.ChangeNumber, m.Associated) {
			continue
		}
		mc := models.MessageChange{
			MessageID:           m.ID,
			FolderID:            m.FolderID,
			Associated:          m.Associated,
			ChangeNumber:        m.ChangeNumber,
			Partial:             partial && d.State.Known(m.ID),
			MidPresent:          extra.Has(models.ExtraFlagEid),
			ChangeNumberPresent: extra.Has(models.ExtraFlagCn),
			MessageSizePresent:  extra.Has(models.ExtraFlagMessageSize),
			BestBody:            flags.Has(models.SyncFlagBestBody),
			Encoding:            enc,
			Properties:          syncProperties(m.Properties, d, m.Associated),
		}
		if mc.Partial {
			s.capture(ctx, requirements.ContentsPartialItem)
		}
		cs.MessageChanges = append(cs.MessageChanges, mc)
		d.State.MarkSent(m.ID, m.ChangeNumber, m.Associated)
		d.State.MarkReadSent(m.ReadStateChangeNumber)
		sent.Add(m.ID)
	}
	cs.ProgressPerMessagePresent = cs.ProgressTotalPresent && len(cs.MessageChanges) > 0

	if flags.Has(models.SyncFlagReadState) {
		for _, m := range selected {
			if m.Associated || sent.Contains(m.ID) || !d.State.ReadStateChanged(m.ReadStateChangeNumber) {
				continue
			}
			cs.ReadStateChanges = append(cs.ReadStateChanges, models.ReadStateChange{MessageID: m.ID, Read: m.Read})
			d.State.MarkReadSent(m.ReadStateChangeNumber)
		}
		if len(cs.ReadStateChanges) > 0 {
			cs.ReadStateChangesPresent = true
			s.capture(ctx, requirements.ContentsReadStateReported)
		}
	}

	if !flags.Has(models.SyncFlagNoDeletions) {
		cs.Deletions.Present = true
		cs.Deletions.NoLongerInScopePresent = !flags.Has(models.SyncFlagIgnoreNoLongerInScope)
		for _, id := range d.State.DetectDeletions(live) {
			if f.SoftDeleted.Contains(id) {
				cs.Deletions.IDSetSoftDeleted = append(cs.Deletions.IDSetSoftDeleted, id)
			} else {
				cs.Deletions.IDSetDeleted = append(cs.Deletions.IDSetDeleted, id)
			}
		}
	}

	cs.FinalState = s.snapshot(ctx, f, d)
	return cs, nil
}

// orderByDelivery sorts delivered messages by delivery order, newest first,
// followed by never-delivered messages by last modification, newest first.
// It reports whether each group is non-empty.
func orderByDelivery(msgs []*store.Message) (byDelivery, byModification bool) {
	slices.SortStableFunc(msgs, func(a, b *store.Message) int {
		switch {
		case a.DeliveryOrder > 0 && b.DeliveryOrder > 0:
			return b.DeliveryOrder - a.DeliveryOrder
		case a.DeliveryOrder > 0:
			return -1
		case b.DeliveryOrder > 0:
			return 1
		default:
			return b.LastModified - a.LastModified
		}
	})
	for _, m := range msgs {
		if m.DeliveryOrder > 0 {
			byDelivery = true
		} else {
			byModification = true
		}
	}
	return byDelivery, byModification
}
