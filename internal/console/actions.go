package console

import (
	"context"
	"fmt"

	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

// deleteMessages holds the success text and the fallback failure text of each deletable section.
var deleteMessages = map[model.Section][2]string{
	model.SectionUsers:      {"用户已成功删除", "删除用户失败"},
	model.SectionItems:      {"物品已删除", "删除物品失败"},
	model.SectionCategories: {"分类已删除", "删除分类失败"},
	model.SectionRequests:   {"交易请求删除成功", "删除交易请求失败"},
	model.SectionReviews:    {"评价已删除", "删除评价失败"},
	model.SectionMessages:   {"消息已删除", "删除消息失败"},
}

// Delete removes record id of section, reports the outcome through the view
// and reloads the section.
func (c *Controller) Delete(ctx context.Context, section model.Section, id int) error {
	msgs, ok := deleteMessages[section]
	if !ok {
		return fmt.Errorf("section %s has no deletable records", section)
	}

	var err error
	switch section {
	case model.SectionUsers:
		err = c.api.DeleteUser(ctx, id)
	case model.SectionItems:
		err = c.api.DeleteItem(ctx, id)
	case model.SectionCategories:
		err = c.api.DeleteCategory(ctx, id)
	case model.SectionRequests:
		err = c.api.DeleteRequest(ctx, id)
	case model.SectionReviews:
		err = c.api.DeleteReview(ctx, id)
	case model.SectionMessages:
		err = c.api.DeleteMessage(ctx, id)
	}
	if err != nil {
		c.logger.Error("delete failed", "section", section, "id", id, "error", err)
		c.view.Alert(AlertDanger, deleteFailure(section, err, msgs[1]))
		return err
	}

	c.logger.Info("record deleted", "section", section, "id", id)
	c.view.Alert(AlertSuccess, msgs[0])
	return c.Refresh(ctx, section)
}

// deleteFailure picks the operator message for a failed delete. Domain
// rejections always get their own text. Users show the server's message;
// the other sections fall back to a generic one.
func deleteFailure(section model.Section, err error, fallback string) string {
	kind := model.KindOf(err)
	if kind.IsDomain() {
		return kind.FriendlyMessage(fallback)
	}
	if section == model.SectionUsers {
		return friendly(err)
	}
	return fallback
}

// ToggleUser flips a user's active flag and reloads the users list.
func (c *Controller) ToggleUser(ctx context.Context, id int) error {
	if err := c.api.ToggleUserStatus(ctx, id); err != nil {
		c.logger.Error("toggle user failed", "id", id, "error", err)
		c.view.Alert(AlertDanger, "切换用户状态失败: "+friendly(err))
		return err
	}
	c.view.Alert(AlertSuccess, "用户状态已更新")
	return c.Refresh(ctx, model.SectionUsers)
}

// SetRequestStatus moves a trade request to status and reloads the requests list.
func (c *Controller) SetRequestStatus(ctx context.Context, id int, status model.RequestStatus) error {
	if _, err := c.api.ChangeRequestStatus(ctx, id, status); err != nil {
		c.logger.Error("change request status failed", "id", id, "status", status, "error", err)
		c.view.Alert(AlertDanger, "状态更新失败: "+friendly(err))
		return err
	}
	c.view.Alert(AlertSuccess, "状态更新成功")
	return c.Refresh(ctx, model.SectionRequests)
}
