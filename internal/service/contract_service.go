package service

import (
	"github.com/sirupsen/logrus"

	"iso-rate-api/internal/constant"
	"iso-rate-api/internal/contract"
	"iso-rate-api/internal/dao"
	"iso-rate-api/internal/dto"
	"iso-rate-api/internal/idgen"
	"iso-rate-api/internal/logger"
	mainmodel "iso-rate-api/internal/model/main"
)

type ContractService struct {
	rateDao    *dao.RateDao
	partnerDao *dao.PartnerDao
	log        *logrus.Logger
}

func NewContractService() *ContractService {
	return &ContractService{
		rateDao:    dao.NewRateDao(),
		partnerDao: dao.NewPartnerDao(),
		log:        logger.NewLogger("contracts"),
	}
}

// Transition runs one state-machine action on a partner rate link. On
// success the status flip and the audit row commit together; on any
// failure nothing mutates.
func (s *ContractService) Transition(linkID uint64, action string, actor dto.Actor, reason string) (*dto.TransitionResp, constant.Error) {
	link, err := s.partnerDao.GetLink(linkID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, constant.NewError(constant.CodeLinkNotFound)
		}
		return nil, constant.NewError(constant.CodeDBError)
	}

	next, terr := contract.Next(link.Status, action, actor.Role, reason)
	if terr != nil {
		return nil, terr
	}

	// submit needs a bound supplier rate table behind the binding
	if action == contract.ActionSubmit {
		binding, err := s.rateDao.GetBinding(link.CategoryBindingID)
		if err != nil {
			if dao.IsNotFound(err) {
				return nil, constant.NewError(constant.CodeBindingNotFound)
			}
			return nil, constant.NewError(constant.CodeDBError)
		}
		if binding.RateTableID == nil {
			return nil, constant.NewError(constant.CodeMissingRateTable)
		}
	}

	audit := &mainmodel.ContractAudit{
		ID:         idgen.New(),
		EntityType: mainmodel.AuditEntityLink,
		EntityID:   linkID,
		PrevStatus: link.Status,
		NewStatus:  next,
		ActorID:    actor.ID,
		Reason:     reason,
	}
	if err := s.partnerDao.TransitionStatus(linkID, link.Status, next, audit); err != nil {
		if dao.IsNotFound(err) {
			// raced with a concurrent transition
			return nil, constant.NewError(constant.CodeInvalidTransition)
		}
		return nil, constant.NewError(constant.CodeDBError)
	}

	s.log.Infof("link %d: %s %s -> %s by actor %d", linkID, action, link.Status, next, actor.ID)
	return &dto.TransitionResp{
		LinkID:     linkID,
		PrevStatus: link.Status,
		NewStatus:  next,
		AuditID:    audit.ID,
	}, nil
}

// TransitionBinding runs one state-machine action on a category
// binding. Bindings share the machine, the role gating and the audit
// trail with partner links; an unapproved binding is not exposed to
// partner linking.
func (s *ContractService) TransitionBinding(bindingID uint64, action string, actor dto.Actor, reason string) (*dto.BindingTransitionResp, constant.Error) {
	binding, err := s.rateDao.GetBinding(bindingID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, constant.NewError(constant.CodeBindingNotFound)
		}
		return nil, constant.NewError(constant.CodeDBError)
	}

	next, terr := contract.Next(binding.Status, action, actor.Role, reason)
	if terr != nil {
		return nil, terr
	}

	if action == contract.ActionSubmit && binding.RateTableID == nil {
		return nil, constant.NewError(constant.CodeMissingRateTable)
	}

	audit := &mainmodel.ContractAudit{
		ID:         idgen.New(),
		EntityType: mainmodel.AuditEntityBinding,
		EntityID:   bindingID,
		PrevStatus: binding.Status,
		NewStatus:  next,
		ActorID:    actor.ID,
		Reason:     reason,
	}
	if err := s.rateDao.TransitionBindingStatus(bindingID, binding.Status, next, audit); err != nil {
		if dao.IsNotFound(err) {
			return nil, constant.NewError(constant.CodeInvalidTransition)
		}
		return nil, constant.NewError(constant.CodeDBError)
	}

	s.log.Infof("binding %d: %s %s -> %s by actor %d", bindingID, action, binding.Status, next, actor.ID)
	return &dto.BindingTransitionResp{
		BindingID:  bindingID,
		PrevStatus: binding.Status,
		NewStatus:  next,
		AuditID:    audit.ID,
	}, nil
}

// LinkPartner adopts a category binding for a partner, starting at
// draft and serving the binding's current rate table version.
func (s *ContractService) LinkPartner(partnerID uint64, req dto.LinkPartnerReq) (*dto.LinkPartnerResp, constant.Error) {
	binding, err := s.rateDao.GetBinding(req.CategoryBindingID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, constant.NewError(constant.CodeBindingNotFound)
		}
		return nil, constant.NewError(constant.CodeDBError)
	}
	if binding.RateTableID == nil {
		return nil, constant.NewError(constant.CodeMissingRateTable)
	}
	if binding.Status != constant.StatusApproved {
		return nil, constant.NewError(constant.CodeBindingNotApproved)
	}
	if req.ValidFrom != nil && req.ValidUntil != nil && req.ValidUntil.Before(*req.ValidFrom) {
		return nil, constant.NewError(constant.CodeInvalidValidity)
	}

	l := &mainmodel.PartnerRateLink{
		ID:                idgen.New(),
		PartnerID:         partnerID,
		CategoryBindingID: req.CategoryBindingID,
		RateTableID:       *binding.RateTableID,
		Status:            constant.StatusDraft,
		Version:           1,
		ValidFrom:         req.ValidFrom,
		ValidUntil:        req.ValidUntil,
		AutoRenew:         req.AutoRenew,
	}
	if err := s.partnerDao.CreateLink(l); err != nil {
		if dao.IsDuplicateKey(err) {
			return nil, constant.NewError(constant.CodeDuplicateLink)
		}
		return nil, constant.NewError(constant.CodeDBError)
	}
	return &dto.LinkPartnerResp{LinkID: l.ID, RateTableID: l.RateTableID, Status: l.Status}, nil
}

// UnlinkPartner is the only way a link dies; expiration never deletes.
func (s *ContractService) UnlinkPartner(partnerID, linkID uint64) constant.Error {
	link, err := s.partnerDao.GetLink(linkID)
	if err != nil {
		if dao.IsNotFound(err) {
			return constant.NewError(constant.CodeLinkNotFound)
		}
		return constant.NewError(constant.CodeDBError)
	}
	if link.PartnerID != partnerID {
		return constant.NewError(constant.CodeActorForbidden)
	}
	if err := s.partnerDao.DeleteLink(linkID); err != nil {
		return constant.NewError(constant.CodeDBError)
	}
	s.log.Infof("link %d unlinked from partner %d", linkID, partnerID)
	return nil
}
