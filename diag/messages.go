package diag

import "fmt"

// Fixed texts. Log scrapers match on these, keep them byte-for-byte stable.
const (
	MsgInvalidTween              = "This Tween has been killed and is now invalid"
	MsgNestedTween               = "This Tween was added to a Sequence and can't be controlled directly"
	MsgNullTween                 = "Null Tween"
	MsgNonPathTween              = "This Tween is not a path tween"
	MsgMissingMaterialProperty   = "This material doesn't have a %s property"
	MsgMissingMaterialPropertyID = "This material doesn't have a %d property ID"
	MsgActiveTweenError          = "Error in %s (%s). It's been taken care of so no problems, but Daniele (DOTween's author) is trying to pinpoint it (it's very rare and he can't reproduce it) so it would be awesome if you could reproduce this log in a sample project and send it to him. Or even just write him the complete log that was generated by this message. Fixing this would make DOTween slightly faster. Thanks."
)

// LogInvalidTween warns about a killed tween. The call site is not included.
func (d *Debugger) LogInvalidTween(_ *CallSite) {
	d.LogWarning(MsgInvalidTween, nil)
}

// LogNestedTween warns that a nested tween was controlled directly.
func (d *Debugger) LogNestedTween(cs *CallSite) {
	d.LogWarning(MsgNestedTween, cs)
}

func (d *Debugger) LogNullTween(_ *CallSite) {
	d.LogWarning(MsgNullTween, nil)
}

func (d *Debugger) LogNonPathTween(cs *CallSite) {
	d.LogWarning(MsgNonPathTween, cs)
}

// LogMissingMaterialProperty warns about a material property missing by name.
func (d *Debugger) LogMissingMaterialProperty(propertyName string) {
	d.LogWarning(fmt.Sprintf(MsgMissingMaterialProperty, propertyName), nil)
}

// LogMissingMaterialPropertyID warns about a material property missing by id.
func (d *Debugger) LogMissingMaterialPropertyID(propertyID int) {
	d.LogWarning(fmt.Sprintf(MsgMissingMaterialPropertyID, propertyID), nil)
}

// LogRemoveActiveTweenError reports an already recovered bookkeeping anomaly.
func (d *Debugger) LogRemoveActiveTweenError(errorInfo string, cs *CallSite) {
	d.LogWarning(fmt.Sprintf(MsgActiveTweenError, "RemoveActiveTween", errorInfo), cs)
}

// LogAddActiveTweenError reports an already recovered bookkeeping anomaly.
func (d *Debugger) LogAddActiveTweenError(errorInfo string, cs *CallSite) {
	d.LogWarning(fmt.Sprintf(MsgActiveTweenError, "AddActiveTween", errorInfo), cs)
}
